package wire

// DefaultMaxNestingDepth is the default limit on message nesting depth
// during decoding. It matches the recursion limit used by protobuf-go.
const DefaultMaxNestingDepth = 10000

// Config controls optional decoding behaviors. Defaults preserve the
// strict baseline behavior.
type Config struct {
	// MaxNestingDepth bounds message nesting during decoding so hostile
	// input cannot exhaust the native call stack. Zero or negative
	// disables the guard. Readers snapshot the value at construction;
	// NewReader callers can override per instance with SetMaxDepth.
	MaxNestingDepth int

	// ReplaceInvalidUTF8: when true, ReadString substitutes the Unicode
	// replacement character for malformed sequences instead of failing
	// with ErrInvalidUTF8. When false (default), string decoding is
	// strict.
	ReplaceInvalidUTF8 bool
}

var config = Config{
	MaxNestingDepth: DefaultMaxNestingDepth,
}

// SetConfig sets the global wire configuration. It must not be called
// concurrently with in-progress encode or decode passes.
func SetConfig(c Config) { config = c }

// CurrentConfig returns the active wire configuration.
func CurrentConfig() Config { return config }
