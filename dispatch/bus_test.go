package dispatch

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recorder struct {
	name string
	log  *[]string
	seen []Notification
	hook func(Notification)
}

func (r *recorder) ReceiveNotification(n Notification) {
	r.seen = append(r.seen, n)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	if r.hook != nil {
		r.hook(n)
	}
}

type sink struct {
	cmds []Command
}

func (s *sink) ReceiveCmd(c Command) {
	s.cmds = append(s.cmds, c)
}

func TestBus(t *testing.T) {
	Convey("Given a bus", t, func() {
		bus := NewBus()

		Convey("Send without a receiver is a no-op", func() {
			So(func() { bus.Send(NewCommand(TogglePlay)) }, ShouldNotPanic)
		})

		Convey("Send reaches the attached receiver", func() {
			s := &sink{}
			bus.Attach(s)
			bus.Send(NewNumberCommand(Seek, -10))

			So(s.cmds, ShouldHaveLength, 1)
			So(s.cmds[0].Type, ShouldEqual, Seek)
			So(s.cmds[0].Param.Number, ShouldEqual, -10)

			Convey("and stops after detach", func() {
				bus.Detach(s)
				bus.Send(NewCommand(TogglePause))
				So(s.cmds, ShouldHaveLength, 1)
			})

			Convey("detaching another receiver keeps the current one", func() {
				bus.Detach(&sink{})
				bus.Send(NewCommand(TogglePause))
				So(s.cmds, ShouldHaveLength, 2)
			})
		})

		Convey("Notify delivers in registration order", func() {
			var order []string
			a := &recorder{name: "a", log: &order}
			b := &recorder{name: "b", log: &order}
			c := &recorder{name: "c", log: &order}
			bus.Register(a)
			bus.Register(b)
			bus.Register(c)

			bus.Notify(NewFlagNotification(Play, false, true))
			So(order, ShouldResemble, []string{"a", "b", "c"})
			So(a.seen[0].Current.Flag, ShouldBeTrue)
			So(a.seen[0].Previous.Flag, ShouldBeFalse)
		})

		Convey("Registering twice delivers once", func() {
			a := &recorder{}
			bus.Register(a)
			bus.Register(a)
			So(bus.Controllers(), ShouldEqual, 1)

			bus.Notify(NewNumberNotification(Pos, 0, 0.5))
			So(a.seen, ShouldHaveLength, 1)
		})

		Convey("Unregister stops delivery", func() {
			a := &recorder{}
			bus.Register(a)
			bus.Unregister(a)
			bus.Notify(NewNumberNotification(Pos, 0, 0.5))
			So(a.seen, ShouldBeEmpty)
		})

		Convey("Changes during a broadcast only affect later broadcasts", func() {
			late := &recorder{name: "late"}
			var first *recorder
			second := &recorder{name: "second"}
			first = &recorder{name: "first", hook: func(Notification) {
				bus.Unregister(second)
				bus.Register(late)
			}}
			bus.Register(first)
			bus.Register(second)

			bus.Notify(NewFlagNotification(Pause, false, true))
			So(second.seen, ShouldHaveLength, 1)
			So(late.seen, ShouldBeEmpty)

			first.hook = nil
			bus.Notify(NewFlagNotification(Pause, true, false))
			So(second.seen, ShouldHaveLength, 1)
			So(late.seen, ShouldHaveLength, 1)
		})

		Convey("A controller may send commands while notified", func() {
			s := &sink{}
			bus.Attach(s)
			link := NewLink(bus)
			bus.Register(&recorder{hook: func(n Notification) {
				link.SendCmd(NewCommand(TogglePause))
			}})

			bus.Notify(NewFlagNotification(Play, false, true))
			So(s.cmds, ShouldHaveLength, 1)
		})

		Convey("Close forgets everything", func() {
			s := &sink{}
			a := &recorder{}
			bus.Attach(s)
			bus.Register(a)
			bus.Close()

			bus.Send(NewCommand(TogglePlay))
			bus.Notify(NewFlagNotification(Play, false, true))
			So(s.cmds, ShouldBeEmpty)
			So(a.seen, ShouldBeEmpty)
		})
	})
}

func TestValues(t *testing.T) {
	Convey("Values compare by kind and member", t, func() {
		So(Number(1).Equal(Number(1)), ShouldBeTrue)
		So(Number(1).Equal(Flag(true)), ShouldBeFalse)
		So(Text("a").Equal(Text("b")), ShouldBeFalse)
		So(None().Equal(Value{}), ShouldBeTrue)
	})

	Convey("Notifications report whether they changed", t, func() {
		So(NewNumberNotification(Parallax, 0.1, 0.1).Changed(), ShouldBeFalse)
		So(NewFlagNotification(Play, false, true).Changed(), ShouldBeTrue)
	})

	Convey("Names render in snake case", t, func() {
		So(TogglePlay.String(), ShouldEqual, "toggle_play")
		So(SetFullscreenInhibitScreensaver.String(), ShouldEqual, "set_fullscreen_inhibit_screensaver")
		So(CrosstalkG.String(), ShouldEqual, "crosstalk_g")
		So(NewNumberCommand(Seek, 10).String(), ShouldEqual, "seek(10)")
	})
}
