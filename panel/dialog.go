package panel

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/stereoplay/stereoplay/dispatch"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/util"
)

// Field binds one dialog entry to the notification it mirrors and the
// command it sends.
type Field struct {
	Name  string
	Label string
	Kind  dispatch.Kind
	Note  dispatch.NotificationType
	Cmd   dispatch.CommandType

	// Toggle marks flag fields driven by a toggle command.
	Toggle bool

	Min, Max float64
	// Scale converts the value into the displayed unit, 100 for percents.
	Scale float64

	read func(player.InitData) dispatch.Value
}

// Display converts v into the unit shown to the user.
func (f Field) Display(v float64) float64 {
	if f.Scale == 0 {
		return v
	}
	return v * f.Scale
}

// Parse converts a displayed number back into a value.
func (f Field) Parse(displayed float64) float64 {
	if f.Scale == 0 {
		return displayed
	}
	return displayed / f.Scale
}

// Dialog is a data driven panel editing a group of fields.
type Dialog struct {
	Name  string
	Title string

	link     dispatch.Link
	fields   []Field
	values   map[string]dispatch.Value
	onChange func(Field, dispatch.Value)
}

// NewDialog returns a dialog over fields, registered with bus.
func NewDialog(bus *dispatch.Bus, name, title string, fields ...Field) *Dialog {
	d := &Dialog{
		Name:   name,
		Title:  title,
		link:   dispatch.NewLink(bus),
		fields: fields,
		values: make(map[string]dispatch.Value, len(fields)),
	}
	bus.Register(d)
	return d
}

// OnChange installs fn to be called for every user change, before the
// command is sent.
func (d *Dialog) OnChange(fn func(Field, dispatch.Value)) {
	d.onChange = fn
}

func (d *Dialog) Fields() []Field { return d.fields }

func (d *Dialog) Field(name string) (Field, bool) {
	return lo.Find(d.fields, func(f Field) bool { return f.Name == name })
}

// Value returns the current value of a field.
func (d *Dialog) Value(name string) dispatch.Value {
	return d.values[name]
}

// Update mirrors init without sending anything.
func (d *Dialog) Update(init player.InitData) {
	for _, f := range d.fields {
		if f.read != nil {
			d.values[f.Name] = f.read(init)
		}
	}
}

func (d *Dialog) ReceiveNotification(n dispatch.Notification) {
	for _, f := range d.fields {
		if f.Note == n.Type {
			d.values[f.Name] = n.Current
		}
	}
}

// Set changes a field on behalf of the user and sends the matching command.
// Numbers are clamped to the field range. Setting the current value again
// sends nothing.
func (d *Dialog) Set(name string, v dispatch.Value) error {
	f, ok := d.Field(name)
	if !ok {
		return fmt.Errorf("%s: unknown field %q", d.Name, name)
	}
	if v.Kind != f.Kind {
		return fmt.Errorf("%s: %s expects a %s value", d.Name, f.Label, kindName(f.Kind))
	}
	if f.Kind == dispatch.KindNumber {
		if math.IsNaN(v.Number) {
			return fmt.Errorf("%s: %s is not a number", d.Name, f.Label)
		}
		v.Number = util.Clamp(v.Number, f.Min, f.Max)
	}
	if d.values[name].Equal(v) {
		return nil
	}

	d.values[name] = v
	if d.onChange != nil {
		d.onChange(f, v)
	}

	switch {
	case f.Toggle:
		d.link.SendCmd(dispatch.NewCommand(f.Cmd))
	default:
		d.link.SendCmd(dispatch.Command{Type: f.Cmd, Param: v})
	}
	return nil
}

func kindName(k dispatch.Kind) string {
	switch k {
	case dispatch.KindFlag:
		return "flag"
	case dispatch.KindNumber:
		return "number"
	case dispatch.KindText:
		return "text"
	default:
		return "empty"
	}
}
