package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProbe(t *testing.T) {
	Convey("Given a media server", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/movie.mkv", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		mux.HandleFunc("/nohead.mkv", func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusPartialContent)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		ctx := context.Background()

		Convey("Reachable sources pass", func() {
			So(Probe(ctx, server.URL+"/movie.mkv"), ShouldBeNil)
		})

		Convey("Servers without HEAD are retried with GET", func() {
			So(Probe(ctx, server.URL+"/nohead.mkv"), ShouldBeNil)
		})

		Convey("Missing sources fail", func() {
			So(Probe(ctx, server.URL+"/missing.mkv"), ShouldNotBeNil)
		})
	})
}
