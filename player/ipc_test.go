package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers one request on conn, after an event and a stray reply.
func fakeMPV(conn net.Conn, reply func(id int64) string) {
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return
	}
	var req ipcCommand
	if err := json.Unmarshal(line, &req); err != nil {
		return
	}

	fmt.Fprintf(conn, `{"event":"property-change","name":"time-pos","data":1.5}`+"\n")
	fmt.Fprintf(conn, `{"request_id":%d,"error":"success","data":"stale"}`+"\n", req.RequestID+1000)
	fmt.Fprintln(conn, reply(req.RequestID))
}

func TestRoundTrip(t *testing.T) {
	Convey("Given an mpv socket", t, func() {
		client, server := net.Pipe()
		defer client.Close()

		Convey("The reply matching the request is returned", func() {
			go fakeMPV(server, func(id int64) string {
				return fmt.Sprintf(`{"request_id":%d,"error":"success","data":42.5}`, id)
			})

			data, err := roundTrip(client, []any{"get_property", "duration"})
			So(err, ShouldBeNil)
			So(data, ShouldEqual, 42.5)
		})

		Convey("mpv errors are not retried", func() {
			go fakeMPV(server, func(id int64) string {
				return fmt.Sprintf(`{"request_id":%d,"error":"property unavailable"}`, id)
			})

			_, err := roundTrip(client, []any{"get_property", "duration"})
			So(err, ShouldHaveSameTypeAs, mpvError(""))
			So(err.Error(), ShouldEqual, "mpv: property unavailable")
		})

		Convey("A closed socket is an error", func() {
			go func() {
				_, _ = bufio.NewReader(server).ReadBytes('\n')
				server.Close()
			}()

			_, err := roundTrip(client, []any{"quit"})
			So(err, ShouldNotBeNil)
		})
	})
}
