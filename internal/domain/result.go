package domain

// Result is the reply handed back to the plugin host for every instruction.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ResultOf converts a command outcome into a Result.
func ResultOf(msg string, err error) Result {
	if err != nil {
		return Result{Success: false, Message: msg, Error: err.Error()}
	}
	return Result{Success: true, Message: msg}
}
