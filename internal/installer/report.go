package installer

// Report prints the closing banner, the URL to open and the PM2 commands for
// managing the server.
func (i *Installer) Report() {
	bin := i.cfg.Supervisor.Binary
	name := i.cfg.Supervisor.ProcessName

	i.log.Success("\n--- 🎉 Setup Complete! 🎉 ---")
	i.log.Success("Your self-hosted %s server is now running in the background.", i.cfg.AppName)
	i.log.Hint("You can access it at: %s", i.cfg.URL)
	i.log.Step("\nYou can manage the server with these commands:")
	i.log.Hint(" '%s list' - View server status", bin)
	i.log.Hint(" '%s stop %s' - Stop the server", bin, name)
	i.log.Hint(" '%s logs %s' - View server logs", bin, name)
}
