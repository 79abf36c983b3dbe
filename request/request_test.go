package request

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stereoplay/stereoplay/filesystem"
)

func TestSpool(t *testing.T) {
	Convey("Given an in-memory spool directory", t, func() {
		filesystem.SetMemMapFs()
		dir := "/requests"

		Convey("empty requests are refused", func() {
			_, err := New(" ", "")
			So(err, ShouldNotBeNil)
		})

		Convey("sent requests can be taken back", func() {
			r, err := New(" /videos/a.mkv ", "/videos/b.mkv")
			So(err, ShouldBeNil)
			So(r.Sources, ShouldResemble, []string{"/videos/a.mkv", "/videos/b.mkv"})

			path, err := Send(dir, r)
			So(err, ShouldBeNil)

			pending, err := Pending(dir)
			So(err, ShouldBeNil)
			So(pending, ShouldResemble, []string{path})

			taken, err := Take(path)
			So(err, ShouldBeNil)
			So(taken.ID, ShouldEqual, r.ID)
			So(taken.Sources, ShouldResemble, r.Sources)

			pending, err = Pending(dir)
			So(err, ShouldBeNil)
			So(pending, ShouldBeEmpty)
		})

		Convey("malformed files are rejected and removed", func() {
			So(filesystem.API().MkdirAll(dir, 0700), ShouldBeNil)
			So(filesystem.API().WriteFile(dir+"/broken.json", []byte("{"), 0600), ShouldBeNil)
			So(filesystem.API().WriteFile(dir+"/empty.json", []byte(`{"sources":[]}`), 0600), ShouldBeNil)

			_, err := Take(dir + "/broken.json")
			So(err, ShouldNotBeNil)
			_, err = Read(dir + "/empty.json")
			So(err, ShouldNotBeNil)

			exists, _ := filesystem.API().Exists(dir + "/broken.json")
			So(exists, ShouldBeFalse)
		})

		Convey("partial files are not pending", func() {
			So(filesystem.API().MkdirAll(dir, 0700), ShouldBeNil)
			So(filesystem.API().WriteFile(dir+"/x.json.part", []byte("{}"), 0600), ShouldBeNil)
			pending, err := Pending(dir)
			So(err, ShouldBeNil)
			So(pending, ShouldBeEmpty)
		})

		Convey("watching needs the OS filesystem", func() {
			So(Watch(context.Background(), dir, func(Request) {}), ShouldNotBeNil)
		})
	})
}

func TestWatch(t *testing.T) {
	Convey("Given a watched directory", t, func() {
		filesystem.SetOsFs()
		defer filesystem.SetMemMapFs()
		dir := t.TempDir()

		early, err := New("/videos/early.mkv")
		So(err, ShouldBeNil)
		_, err = Send(dir, early)
		So(err, ShouldBeNil)

		received := make(chan Request, 4)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- Watch(ctx, dir, func(r Request) { received <- r }) }()

		Convey("waiting and new requests are delivered", func() {
			select {
			case r := <-received:
				So(r.Sources, ShouldResemble, []string{"/videos/early.mkv"})
			case <-time.After(5 * time.Second):
				So("no pending request delivered", ShouldBeEmpty)
			}

			late, err := New("/videos/late.mkv")
			So(err, ShouldBeNil)
			_, err = Send(dir, late)
			So(err, ShouldBeNil)

			select {
			case r := <-received:
				So(r.ID, ShouldEqual, late.ID)
			case <-time.After(5 * time.Second):
				So("no new request delivered", ShouldBeEmpty)
			}

			cancel()
			So(<-done, ShouldBeNil)
		})
	})
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given a stale and a fresh request", t, func() {
		filesystem.SetMemMapFs()
		dir := "/requests"

		stale, err := New("/videos/old.mkv")
		So(err, ShouldBeNil)
		stalePath, err := Send(dir, stale)
		So(err, ShouldBeNil)
		old := time.Now().Add(-2 * TTL)
		So(filesystem.API().Chtimes(stalePath, old, old), ShouldBeNil)

		fresh, err := New("/videos/new.mkv")
		So(err, ShouldBeNil)
		freshPath, err := Send(dir, fresh)
		So(err, ShouldBeNil)

		Convey("only the stale one is removed", func() {
			CollectGarbage(dir, TTL)

			pending, err := Pending(dir)
			So(err, ShouldBeNil)
			So(pending, ShouldResemble, []string{freshPath})
		})

		Convey("a missing directory is ignored", func() {
			So(func() { CollectGarbage("/nowhere", TTL) }, ShouldNotPanic)
		})
	})
}
