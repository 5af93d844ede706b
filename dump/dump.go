// Package dump renders protobuf wire data as structured log events for
// debugging. It walks tags the same way a decode pass does, labels
// fields through an optional registry, and recurses into nested
// messages the registry knows about. Everything here is diagnostic
// tooling; production decode paths never import it.
package dump

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/pbflite/registry"
	"github.com/anirudhraja/pbflite/wire"
)

// Dumper walks wire data and emits one log event per field.
type Dumper struct {
	log zerolog.Logger
	reg *registry.Registry
}

// New creates a dumper. reg may be nil; fields are then labeled
// field_N and nested messages are shown as raw bytes.
func New(log zerolog.Logger, reg *registry.Registry) *Dumper {
	return &Dumper{log: log, reg: reg}
}

// Dump walks data as a message of the given registered name. An empty
// name dumps with synthetic field labels only.
func (d *Dumper) Dump(data []byte, message string) error {
	r := wire.NewReader(data)
	return d.dumpFields(r, r.Len(), message, 0)
}

func (d *Dumper) dumpFields(r *wire.Reader, end int, message string, depth int) error {
	for r.Pos() < end {
		offset := r.Pos()
		num, wt, err := r.ReadTag()
		if err != nil {
			return err
		}

		ev := d.log.Info().
			Int("offset", offset).
			Int("depth", depth).
			Int("field", int(num)).
			Stringer("wire_type", wt)
		if d.reg != nil {
			ev = ev.Str("name", d.reg.FieldName(message, num))
		}

		switch wt {
		case wire.WireVarint:
			v, err := r.ReadVarint()
			if err != nil {
				return err
			}
			ev.Uint64("value", v).Msg("field")

		case wire.WireFixed32:
			v, err := r.ReadFixed32()
			if err != nil {
				return err
			}
			ev.Uint32("value", v).Msg("field")

		case wire.WireFixed64:
			v, err := r.ReadFixed64()
			if err != nil {
				return err
			}
			ev.Uint64("value", v).Msg("field")

		case wire.WireBytes:
			data, err := r.ReadRawBytes()
			if err != nil {
				return err
			}
			if nested, ok := d.nestedMessage(message, num); ok {
				ev.Int("length", len(data)).Str("nested", nested).Msg("message")
				sub := wire.NewReader(data)
				if err := d.dumpFields(sub, sub.Len(), nested, depth+1); err != nil {
					return err
				}
				continue
			}
			if utf8.Valid(data) {
				ev.Str("value", string(data)).Msg("field")
			} else {
				ev.Str("value_hex", hex.EncodeToString(data)).Msg("field")
			}
		}
	}
	return nil
}

func (d *Dumper) nestedMessage(message string, num wire.FieldNumber) (string, bool) {
	if d.reg == nil {
		return "", false
	}
	f, ok := d.reg.Lookup(message, num)
	if !ok || f.Nested == "" {
		return "", false
	}
	return f.Nested, true
}
