/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// LoggerBuilder contains the data and logic needed to create a logger. Don't create instances of
// this directly, use the NewLogger function instead.
type LoggerBuilder struct {
	writer    io.Writer
	out       io.Writer
	err       io.Writer
	level     string
	file      string
	fields    map[string]any
	redact    bool
	sensitive []string
}

// NewLogger creates a builder that can then be used to configure and create a logger. Redaction is
// enabled by default and always covers the attributes listed in DefaultSensitiveKeys.
func NewLogger() *LoggerBuilder {
	return &LoggerBuilder{
		redact:    true,
		sensitive: slices.Clone(DefaultSensitiveKeys),
	}
}

// DefaultSensitiveKeys are attribute names whose values are replaced when redaction is enabled, even
// when the caller forgot to mark them with the exclamation mark prefix.
var DefaultSensitiveKeys = []string{"password", "newPassword", "token"}

// SetWriter sets the writer that the logger will write to. When set, the log file is ignored.
func (b *LoggerBuilder) SetWriter(value io.Writer) *LoggerBuilder {
	b.writer = value
	return b
}

// SetOut sets the stream used when the log file is 'stdout'.
func (b *LoggerBuilder) SetOut(value io.Writer) *LoggerBuilder {
	b.out = value
	return b
}

// SetErr sets the stream used when the log file is 'stderr'.
func (b *LoggerBuilder) SetErr(value io.Writer) *LoggerBuilder {
	b.err = value
	return b
}

// AddField adds a field that will be added to all the log messages. The value '%p' is replaced by
// the process identifier, any other value is added without change.
func (b *LoggerBuilder) AddField(name string, value any) *LoggerBuilder {
	if b.fields == nil {
		b.fields = map[string]any{}
	}
	b.fields[name] = value
	return b
}

// AddFields adds a set of fields, see AddField for the meaning of values.
func (b *LoggerBuilder) AddFields(values map[string]any) *LoggerBuilder {
	if b.fields == nil {
		b.fields = map[string]any{}
	}
	maps.Copy(b.fields, values)
	return b
}

// SetLevel sets the log level.
func (b *LoggerBuilder) SetLevel(value string) *LoggerBuilder {
	b.level = value
	return b
}

// SetFile sets the file that the logger will write to. The values 'stdout' and 'stderr' select the
// standard streams.
func (b *LoggerBuilder) SetFile(value string) *LoggerBuilder {
	b.file = value
	return b
}

// SetRedact enables or disables removing sensitive values. A field is sensitive when its name starts
// with an exclamation mark or is one of the configured sensitive keys:
//
//	logger.Info(
//		"User created",
//		"username", username,
//		"!hash", hash,
//	)
//
// produces `"hash": "***"` when redaction is enabled. The exclamation mark is always removed from
// the field name.
func (b *LoggerBuilder) SetRedact(value bool) *LoggerBuilder {
	b.redact = value
	return b
}

// AddSensitiveKey adds an attribute name that is always redacted.
func (b *LoggerBuilder) AddSensitiveKey(name string) *LoggerBuilder {
	b.sensitive = append(b.sensitive, name)
	return b
}

// SetFlags sets the command line flags that should be used to configure the logger. Only flags that
// were explicitly changed override values set with the other methods.
func (b *LoggerBuilder) SetFlags(flags *pflag.FlagSet) *LoggerBuilder {
	if flags == nil {
		return b
	}
	if flags.Changed(levelFlagName) {
		if value, err := flags.GetString(levelFlagName); err == nil {
			b.SetLevel(value)
		}
	}
	if flags.Changed(fileFlagName) {
		if value, err := flags.GetString(fileFlagName); err == nil {
			b.SetFile(value)
		}
	}
	if flags.Changed(fieldFlagName) {
		if values, err := flags.GetStringArray(fieldFlagName); err == nil {
			b.AddFields(parseFieldItems(values))
		}
	}
	if flags.Changed(fieldsFlagName) {
		if values, err := flags.GetStringSlice(fieldsFlagName); err == nil {
			b.AddFields(parseFieldItems(values))
		}
	}
	if flags.Changed(redactFlagName) {
		if value, err := flags.GetBool(redactFlagName); err == nil {
			b.SetRedact(value)
		}
	}
	return b
}

func parseFieldItems(items []string) map[string]any {
	fields := map[string]any{}
	for _, item := range items {
		if item == pidLogFieldValue {
			fields[pidLogFieldName] = pidLogFieldValue
			continue
		}
		name, value, _ := strings.Cut(item, "=")
		fields[strings.TrimSpace(name)] = value
	}
	return fields
}

// Build uses the data stored in the builder to create a new logger. The returned logger adds the
// attributes stored in the context with AppendCtx to every record.
func (b *LoggerBuilder) Build() (*slog.Logger, error) {
	level := slog.LevelInfo
	if b.level != "" {
		if err := level.UnmarshalText([]byte(b.level)); err != nil {
			return nil, fmt.Errorf("failed to parse log level '%s': %w", b.level, err)
		}
	}

	writer := b.writer
	if writer == nil {
		var err error
		writer, err = b.openWriter()
		if err != nil {
			return nil, err
		}
	}

	replacers := []func([]string, slog.Attr) slog.Attr{replaceTime}
	if b.redact {
		replacers = append(replacers, redactor(b.sensitive))
	} else {
		replacers = append(replacers, preserveRedacted)
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: composeReplacers(replacers),
	})

	return slog.New(newContextHandler(handler)).With(b.customFields()...), nil
}

func (b *LoggerBuilder) openWriter() (io.Writer, error) {
	switch b.file {
	case "", "stdout":
		if b.out != nil {
			return b.out, nil
		}
		return os.Stdout, nil
	case "stderr":
		if b.err != nil {
			return b.err, nil
		}
		return os.Stderr, nil
	default:
		file, err := os.OpenFile(b.file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o660)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", b.file, err)
		}
		return file, nil
	}
}

func (b *LoggerBuilder) customFields() []any {
	names := slices.Sorted(maps.Keys(b.fields))
	fields := make([]any, 0, 2*len(names))
	for _, name := range names {
		value := b.fields[name]
		if value == pidLogFieldValue {
			value = os.Getpid()
		}
		fields = append(fields, name, value)
	}
	return fields
}

func composeReplacers(replacers []func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		for _, replacer := range replacers {
			a = replacer(groups, a)
		}
		return a
	}
}

func replaceTime(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindTime {
		a = slog.String(a.Key, a.Value.Time().UTC().Format(time.RFC3339))
	}
	return a
}

func redactor(sensitive []string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if key, ok := strings.CutPrefix(a.Key, "!"); ok {
			return slog.String(key, redactedValue)
		}
		if slices.Contains(sensitive, a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		return a
	}
}

func preserveRedacted(_ []string, a slog.Attr) slog.Attr {
	a.Key = strings.TrimPrefix(a.Key, "!")
	return a
}

const redactedValue = "***"

// Values of log fields with special meanings. For example '%p' will be replaced with the identifier
// of the process.
const (
	pidLogFieldName  = "pid"
	pidLogFieldValue = "%p"
)
