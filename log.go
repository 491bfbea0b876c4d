package errchain

import "log/slog"

// LogAttr returns an slog.Attr for the error under the "error" key.
// If err is a [Link], the value is the rendered chain (see [Render]).
// Otherwise, it is the error message.
func LogAttr(err error) slog.Attr {
	if Len(err) == 0 {
		return slog.Any("error", err)
	}
	return slog.String("error", RenderString(err))
}
