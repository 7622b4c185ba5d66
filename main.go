package main

import (
	"github.com/thatoneguy-ian/fvtt5eold/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which parses flags, runs the installer and
// exits with the resulting status code.
//
// setup-5etools brings up a self-hosted 5etools server on this machine:
//   - Checks that git and npm are on PATH
//   - Asks where to install (default ./5etools-server)
//   - Clones the 5etools source repository and its image repository
//   - Runs `npm install` and the production service worker build
//   - Installs PM2 globally if needed, starts the server under it and saves
//     the PM2 process list so it survives a reboot
//
// Error handling strategy:
//   - Missing tools, failed clones, a failed `npm install`, a failed PM2 install
//     and a failed PM2 start stop the run with exit status 1
//   - A failed build or `pm2 save` is reported and the run continues
//   - Nothing is rolled back; rerun after fixing the reported problem
func main() {
	cmd.Execute()
}
