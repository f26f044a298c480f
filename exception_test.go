package apiresponse

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestHTTPError(t *testing.T) {
	convey.Convey("test error message fallbacks", t, func() {
		convey.So(NewHTTPError(404, "missing user").Error(), convey.ShouldEqual, "missing user")
		cause := errors.New("db closed")
		err := NewHTTPError(503, "", HTTPErrorWithCause(cause))
		convey.So(err.Error(), convey.ShouldEqual, "db closed")
		convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
		convey.So(NewHTTPError(404, "").Error(), convey.ShouldEqual, "Not Found")
		convey.So(NewHTTPError(0, "").Error(), convey.ShouldEqual, "Internal Server Error")
		convey.So(NewHTTPError(599, "").Error(), convey.ShouldEqual, "status 599")
	})
	convey.Convey("test error with extras", t, func() {
		headers := map[string]string{"x-request-id": "1"}
		err := NewHTTPError(409, "conflict", HTTPErrorWithHeaders(headers), HTTPErrorWithBody("raw"))
		convey.So(err.StatusCode(), convey.ShouldEqual, 409)
		convey.So(err.Headers(), convey.ShouldResemble, headers)
		convey.So(err.Body(), convey.ShouldEqual, "raw")
	})
}

func TestEnvelopeError(t *testing.T) {
	convey.Convey("test envelope error unwraps to the failure sentinel", t, func() {
		err := &EnvelopeError{Envelope: &FailureEnvelope{StatusCode: 418}, message: "teapot"}
		convey.So(err.Error(), convey.ShouldEqual, "teapot")
		convey.So(errors.Is(err, ErrEnvelopeFailure), convey.ShouldBeTrue)
		convey.So(err.StatusCode(), convey.ShouldEqual, 418)
	})
}
