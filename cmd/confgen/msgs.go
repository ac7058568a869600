package confgen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render configuration templates per deployment environment"
	MsgGenerateShort   = "Render templates for an environment and write them"
	MsgValidateShort   = "Check templates against an environment's variables"
	MsgRefsShort       = "List the variables each template references"
	MsgEnvsShort       = "List environments and their variables"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoTemplates       = "No templates found."
	MsgNoEnvironments    = "No environments defined."
	MsgRefsItem          = "%s: %s\n"
	MsgEnvItem           = "%s: %s\n"
	MsgNone              = "(none)"
	MsgValidationSummary = "%d template(s) valid for %s\n"
	MsgConfigWritten     = "Wrote %s\n"
	MsgVersionFormat     = "confgen version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrConfigExists = "%s already exists"
	MsgErrNoCommand    = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagConfig    = "Configuration file (default: .confgen.toml in the current directory)"
	MsgFlagTemplates = "Template file or directory"
	MsgFlagVars      = "Variables file (YAML, TOML or JSON)"
	MsgFlagOutput    = "Output directory; {env} is replaced with the environment"
	MsgFlagDryRun    = "Print rendered templates instead of writing them"
	MsgFlagSet       = "Override a variable for this run (KEY=VALUE, repeatable)"
	MsgFlagFailFast  = "Process templates one at a time, keeping files written before a failure"
	MsgFlagEngine    = "Template engine (hcl, go)"
	MsgFlagWrite     = "Write config to .confgen.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimRight(msgValidateExampleRaw, "\n")

	//go:embed msgs/refs-long.txt
	msgRefsLongRaw string
	MsgRefsLong    = strings.TrimSpace(msgRefsLongRaw)

	//go:embed msgs/envs-long.txt
	msgEnvsLongRaw string
	MsgEnvsLong    = strings.TrimSpace(msgEnvsLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
