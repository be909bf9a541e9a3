package logger

// NopLogger discards everything. Used in tests.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (n *NopLogger) Debug(module, message string, details map[string]interface{}) {}

func (n *NopLogger) Info(module, message string, details map[string]interface{}) {}

func (n *NopLogger) Warn(module, message string, details map[string]interface{}) {}

func (n *NopLogger) Error(module, message string, details map[string]interface{}) {}

func (n *NopLogger) Sync() error { return nil }
