package apiresponse

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestGetUUID(t *testing.T) {
	convey.Convey("test get uuid", t, func() {
		convey.So(GetUUID(), convey.ShouldHaveLength, 36)
		convey.So(GetUUID(), convey.ShouldNotEqual, GetUUID())
	})
}

func TestCloneHeaders(t *testing.T) {
	convey.Convey("test clone headers", t, func() {
		headers := map[string]string{"x-foo": "bar"}
		clone := CloneHeaders(headers)
		clone["x-baz"] = "yeah"
		convey.So(headers, convey.ShouldResemble, map[string]string{"x-foo": "bar"})
		convey.So(CloneHeaders(nil), convey.ShouldBeNil)
	})
}

func TestPatternStatus(t *testing.T) {
	convey.Convey("test pattern status", t, func() {
		convey.So(PatternStatus(200), convey.ShouldEqual, "[200]")
		convey.So(PatternStatus(503), convey.ShouldEqual, "[503]")
	})
}
