// Package logging provides a human friendly slog handler: a colored
// level, the message, and the attributes as indented JSON.
package logging

import (
	"context"
	"io"
	"log"
	"log/slog"
	"sync"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Options struct {
	Level slog.Leveler
}

type Handler struct {
	level slog.Leveler
	mu    *sync.Mutex
	l     *log.Logger
	attrs []slog.Attr
	// prefix is the dotted group path applied to attributes added later.
	prefix string
}

func NewHandler(out io.Writer, opts Options) *Handler {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		level: level,
		mu:    &sync.Mutex{},
		l:     log.New(out, "", 0),
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch {
	case r.Level < slog.LevelInfo:
		level = color.WhiteString(level)
	case r.Level < slog.LevelWarn:
		level = color.GreenString(level)
	case r.Level < slog.LevelError:
		level = color.YellowString(level)
	default:
		level = color.RedString(level)
	}
	timeStr := r.Time.Format("[15:04:05]")
	message := color.HiWhiteString(r.Message)

	fields := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		addField(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.prefix, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	// Omit empty struct.
	if len(fields) == 0 {
		h.l.Println(timeStr, level, message)
		return nil
	}
	j, err := json.MarshalIndent(fields, "", " ")
	if err != nil {
		return err
	}
	h.l.Println(timeStr, level, message, color.WhiteString(string(j)))
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func addField(fields map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if v.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group = prefix + a.Key + "."
		}
		for _, ga := range v.Group() {
			addField(fields, group, ga)
		}
		return
	}
	switch val := v.Any().(type) {
	case error:
		fields[prefix+a.Key] = val.Error()
	default:
		fields[prefix+a.Key] = val
	}
}
