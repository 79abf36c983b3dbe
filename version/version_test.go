package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		for _, c := range []struct {
			a, b string
			want int
		}{
			{"0.3.0", "0.3.0", 0},
			{"v0.4.0", "0.3.9", 1},
			{"0.3.1", "0.10.0", -1},
			{"1.0.0", "0.99.99", 1},
		} {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		_, err := Compare("latest", "0.3.0")
		So(err, ShouldNotBeNil)
	})
}

func TestFetch(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		tag := `{"tag_name":"v1.2.3"}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tag == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(tag))
		}))
		defer server.Close()

		original := ReleasesAPI
		ReleasesAPI = server.URL
		defer func() { ReleasesAPI = original }()

		Convey("The tag is returned without its prefix", func() {
			latest, err := fetch()
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "1.2.3")
		})

		Convey("A missing release is an error", func() {
			tag = ""
			_, err := fetch()
			So(err, ShouldNotBeNil)
		})
	})
}
