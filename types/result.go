package types

// Result is the envelope handed to the UI collaborator.  It flattens a
// (value, error) pair into the success/data/error shape the presentation
// layer renders, so UI code never inspects Go error values directly.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Err[T any](err error) Result[T] {
	if err == nil {
		var zero T
		return Result[T]{Success: true, Data: zero}
	}
	return Result[T]{Success: false, Error: err.Error()}
}

// Wrap converts a plain (value, error) return into a Result.
func Wrap[T any](data T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(data)
}
