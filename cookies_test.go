package apiresponse

import (
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestFormatCookies(t *testing.T) {
	convey.Convey("test format a simple cookie", t, func() {
		response := NewResponse(nil, ResponseWithCookies(NewCookies().Set("foo", "bar")))
		for i := 0; i < 3; i++ {
			value, ok := FormatCookies(response)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(value, convey.ShouldEqual, "foo=bar")
		}
	})
	convey.Convey("test format only the first cookie", t, func() {
		response := NewResponse(nil, ResponseWithCookies(NewCookies().Set("foo", "bar").Set("baz", "yeah")))
		value, ok := FormatCookies(response)
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(value, convey.ShouldEqual, "foo=bar")
	})
	convey.Convey("test format a complex cookie", t, func() {
		cookies := NewCookies().SetOptions("foo", CookieOptions{
			Value:    "bar",
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			Expires:  ExpiresText("Wed, 01 Jan 2025 00:00:00 GMT"),
			Domain:   ".example.com",
		})
		value, ok := FormatCookies(&Response{Cookies: cookies})
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(value, convey.ShouldEqual, "foo=bar; HttpOnly; Secure; Path=/; Expires=Wed, 01 Jan 2025 00:00:00 GMT; Domain=.example.com")
	})
	convey.Convey("test format a complex cookie with only its value", t, func() {
		cookies := NewCookies().SetOptions("foo", CookieOptions{Value: "bar"})
		value, _ := FormatCookies(&Response{Cookies: cookies})
		convey.So(value, convey.ShouldEqual, "foo=bar")
	})
	convey.Convey("test format a time as expire date", t, func() {
		expires := time.Date(2025, time.January, 1, 8, 30, 0, 0, time.FixedZone("UTC+8", 8*3600))
		cookies := NewCookies().SetOptions("foo", CookieOptions{Value: "bar", Expires: ExpiresAt(expires)})
		value, _ := FormatCookies(&Response{Cookies: cookies})
		convey.So(value, convey.ShouldEqual, "foo=bar; Expires=Wed, 01 Jan 2025 00:30:00 GMT")
	})
	convey.Convey("test format without cookies", t, func() {
		_, ok := FormatCookies(&Response{Cookies: NewCookies()})
		convey.So(ok, convey.ShouldBeFalse)
		_, ok = FormatCookies(&Response{})
		convey.So(ok, convey.ShouldBeFalse)
		_, ok = FormatCookies(nil)
		convey.So(ok, convey.ShouldBeFalse)
	})
}

func TestCookiesOrder(t *testing.T) {
	convey.Convey("test set an existing cookie keeps its position", t, func() {
		cookies := NewCookies().Set("z", "1").Set("a", "2").Set("z", "3")
		convey.So(cookies.Names(), convey.ShouldResemble, []string{"z", "a"})
		cookie, ok := cookies.First()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(cookie.Value, convey.ShouldEqual, "3")
		_, ok = cookies.Get("missing")
		convey.So(ok, convey.ShouldBeFalse)
	})
	convey.Convey("test decode keeps document order", t, func() {
		cookies := &Cookies{}
		err := json.Unmarshal([]byte(`{"z":"bar","a":"yeah","m":{"value":"x","secure":true}}`), cookies)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cookies.Names(), convey.ShouldResemble, []string{"z", "a", "m"})
		m, _ := cookies.Get("m")
		convey.So(m.HeaderValue(), convey.ShouldEqual, "m=x; Secure")
	})
	convey.Convey("test decode scalar cookie values", t, func() {
		cookies := &Cookies{}
		err := json.Unmarshal([]byte(`{"n":100,"b":true}`), cookies)
		convey.So(err, convey.ShouldBeNil)
		n, _ := cookies.Get("n")
		b, _ := cookies.Get("b")
		convey.So(n.HeaderValue(), convey.ShouldEqual, "n=100")
		convey.So(b.HeaderValue(), convey.ShouldEqual, "b=true")
	})
	convey.Convey("test decode invalid cookies", t, func() {
		cookies := &Cookies{}
		err := cookies.UnmarshalJSON([]byte(`{"foo":["bar"]}`))
		convey.So(errors.Is(err, ErrInvalidCookie), convey.ShouldBeTrue)
		convey.So(errors.Is(err, ErrInvalidExpires), convey.ShouldBeFalse)
		err = cookies.UnmarshalJSON([]byte(`{"foo":{"value":"bar","expires":100}}`))
		convey.So(errors.Is(err, ErrInvalidExpires), convey.ShouldBeTrue)
		convey.So(errors.Is(err, ErrInvalidCookie), convey.ShouldBeTrue)
		err = cookies.UnmarshalJSON([]byte(`{"foo":{"value":true}}`))
		convey.So(errors.Is(err, ErrInvalidCookie), convey.ShouldBeTrue)
		err = cookies.UnmarshalJSON([]byte(`["foo"]`))
		convey.So(err, convey.ShouldNotBeNil)
	})
	convey.Convey("test encode and decode cookies", t, func() {
		cookies := NewCookies().Set("foo", "bar").SetOptions("baz", CookieOptions{
			Value:   "yeah",
			Path:    "/",
			Expires: ExpiresText("Wed, 01 Jan 2025 00:00:00 GMT"),
		})
		data, err := json.Marshal(cookies)
		convey.So(err, convey.ShouldBeNil)
		decoded := &Cookies{}
		convey.So(json.Unmarshal(data, decoded), convey.ShouldBeNil)
		convey.So(decoded.Names(), convey.ShouldResemble, []string{"foo", "baz"})
		baz, _ := decoded.Get("baz")
		convey.So(baz.HeaderValue(), convey.ShouldEqual, "baz=yeah; Path=/; Expires=Wed, 01 Jan 2025 00:00:00 GMT")
	})
}
