package errors

// Result holds either a value or the error that prevented it.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result. A nil err yields a success holding the zero value.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of builds a Result from the usual (value, error) pair, so a call can be passed
// straight in: Of(strconv.Atoi(s)).
func Of[T any](v T, err error) Result[T] {
	return Result[T]{value: v, err: err}
}

// Get returns the value and the error.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the value, the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether r holds no error.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Must returns the value and panics with the error if there is one.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// StringResult holds either a value or a failure described by a plain message.
type StringResult[T any] struct {
	value  T
	msg    string
	failed bool
}

// OkString returns a successful StringResult.
func OkString[T any](v T) StringResult[T] {
	return StringResult[T]{value: v}
}

// FailString returns a failed StringResult. An empty msg is still a failure.
func FailString[T any](msg string) StringResult[T] {
	return StringResult[T]{msg: msg, failed: true}
}

// Get returns the value and the failure message, which is empty on success.
func (s StringResult[T]) Get() (T, string) {
	return s.value, s.msg
}

// IsOk reports whether s is a success.
func (s StringResult[T]) IsOk() bool {
	return !s.failed
}

// Option holds a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from a comma-ok pair: OptionOf(os.LookupEnv("HOME")).
func OptionOf[T any](v T, ok bool) Option[T] {
	return Option[T]{value: v, ok: ok}
}

// Get returns the value and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}
