package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/ouraface/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Kind(kind string) slog.Attr {
	const kindKey = "kind"
	return slog.String(kindKey, kind)
}

func Field(name string) slog.Attr {
	const fieldKey = "field"
	return slog.String(fieldKey, name)
}

func Key(key string) slog.Attr {
	const keyKey = "key"
	return slog.String(keyKey, key)
}


func Rows(rows int) slog.Attr {
	const rowsKey = "rows"
	return slog.Int(rowsKey, rows)
}

func RefreshID(id string) slog.Attr {
	const refreshIDKey = "refresh_id"
	return slog.String(refreshIDKey, id)
}

func Trigger(trigger string) slog.Attr {
	const triggerKey = "trigger"
	return slog.String(triggerKey, trigger)
}

func State(state string) slog.Attr {
	const stateKey = "state"
	return slog.String(stateKey, state)
}

func Driver(driver string) slog.Attr {
	const driverKey = "driver"
	return slog.String(driverKey, driver)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}

func Line(n int) slog.Attr {
	const lineKey = "line"
	return slog.Int(lineKey, n)
}


func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func Status(code int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, code)
}
