package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	KeyShellPath = "SHELL_PATH" // Interpreter that receives the command line
	KeyShellFlag = "SHELL_FLAG" // Flag placed before the command line
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyShellPath: "sh",
	KeyShellFlag: "-c",
}
