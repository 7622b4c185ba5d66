package installer

import (
	"errors"
	"fmt"
)

// Stage names one step of an install run.
type Stage string

const (
	StageCheck             Stage = "check"
	StagePrompt            Stage = "prompt"
	StageProvisionDir      Stage = "provision_dir"
	StageCloneApp          Stage = "clone_app"
	StageCloneAssets       Stage = "clone_assets"
	StageInstallDeps       Stage = "install_deps"
	StageBuild             Stage = "build"
	StageSupervisorInstall Stage = "supervisor_install"
	StageSupervisorStart   Stage = "supervisor_start"
	StageSupervisorPersist Stage = "supervisor_persist"
	StageReport            Stage = "report"
)

var (
	// ErrPrerequisiteMissing is wrapped when a required tool is not on PATH.
	ErrPrerequisiteMissing = errors.New("prerequisite not found")
	// ErrCommandFailed is wrapped when an external command exits unsuccessfully.
	ErrCommandFailed = errors.New("command failed")
)

// StepError is returned by every fatal stage. The failure has already been
// reported to the operator by the time a StepError reaches the caller.
type StepError struct {
	Stage Stage
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func fail(stage Stage, err error) *StepError {
	return &StepError{Stage: stage, Err: err}
}

func commandFailed(stage Stage, cmd fmt.Stringer) *StepError {
	return fail(stage, fmt.Errorf("%w: %s", ErrCommandFailed, cmd))
}
