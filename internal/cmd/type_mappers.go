package cmd

import (
	"fmt"
	"log/slog"
	"reflect"
	"unicode/utf8"

	"github.com/alecthomas/kong"
)

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	// glyph accepts a string holding exactly one character.
	kong.NamedMapper("glyph", kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("string", &s); err != nil {
			return err
		}

		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf(`must be a single character but got "%s"`, s)
		}
		r, _ := utf8.DecodeRuneInString(s)

		if target.Type().Kind() == reflect.Pointer {
			target.Set(reflect.ValueOf(&r).Convert(target.Type()))
		} else {
			target.Set(reflect.ValueOf(r).Convert(target.Type()))
		}

		return nil
	})),

	kong.TypeMapper(reflect.TypeOf(slog.Level(0)), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var levelString string
		if err := ctx.Scan.PopValueInto("string", &levelString); err != nil {
			return err
		}

		switch levelString {
		case "debug":
			target.Set(reflect.ValueOf(slog.LevelDebug))
		case "info":
			target.Set(reflect.ValueOf(slog.LevelInfo))
		case "warn":
			target.Set(reflect.ValueOf(slog.LevelWarn))
		case "error":
			target.Set(reflect.ValueOf(slog.LevelError))
		default:
			return fmt.Errorf(`must be one of "debug","info","warn","error" but got "%s"`, levelString)
		}

		return nil
	})),
}
