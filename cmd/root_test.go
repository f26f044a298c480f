package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wetrycode/apiresponse"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}

func runRender(fs afero.Fs, args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd := NewRootCmd(fs)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"render"}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCmd(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"/ok.json":                    `{"statusCode": 201, "body": {"foo": "bar"}, "cookies": {"foo": "bar", "baz": "yeah"}}`,
		"/fail.json":                  `{"statusCode": 404, "body": {"message": "not found"}}`,
		"/error.json":                 `{"message": "Generic error"}`,
		"/conf/settings.yaml":         "response:\n  mode: \"offline\"\n",
		"/conf-invalid/settings.yaml": "response:\n  mode: \"lambda\"\n",
	})
	convey.Convey("test render a successful descriptor", t, func() {
		stdout, _, err := runRender(fs, "/ok.json")
		convey.So(err, convey.ShouldBeNil)
		envelope := &apiresponse.Envelope{}
		convey.So(jsoniter.Unmarshal([]byte(stdout), envelope), convey.ShouldBeNil)
		convey.So(envelope.StatusCode, convey.ShouldEqual, 201)
		convey.So(envelope.StatusCodeForPatternMatching, convey.ShouldEqual, "[201]")
		convey.So(envelope.Headers, convey.ShouldResemble, map[string]string{"Set-Cookie": "foo=bar"})
		convey.So(envelope.Body, convey.ShouldEqual, `{"foo":"bar"}`)
	})
	convey.Convey("test render in offline mode", t, func() {
		stdout, _, err := runRender(fs, "/ok.json", "--mode", "offline")
		convey.So(err, convey.ShouldBeNil)
		convey.So(strings.TrimSpace(stdout), convey.ShouldEqual, `{"foo":"bar"}`)

		stdout, _, err = runRender(fs, "/ok.json", "--config", "/conf")
		convey.So(err, convey.ShouldBeNil)
		convey.So(strings.TrimSpace(stdout), convey.ShouldEqual, `{"foo":"bar"}`)
	})
	convey.Convey("test render a failing descriptor", t, func() {
		stdout, stderr, err := runRender(fs, "/fail.json")
		convey.So(errors.Is(err, apiresponse.ErrEnvelopeFailure), convey.ShouldBeTrue)
		convey.So(stdout, convey.ShouldBeEmpty)
		convey.So(stderr, convey.ShouldContainSubstring, `"statusCode":404`)

		_, stderr, err = runRender(fs, "/fail.json", "-m", "offline")
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(strings.TrimSpace(stderr), convey.ShouldEqual, "[404] not found")
	})
	convey.Convey("test render an error descriptor", t, func() {
		_, stderr, err := runRender(fs, "/error.json", "--error")
		convey.So(errors.Is(err, apiresponse.ErrEnvelopeFailure), convey.ShouldBeTrue)
		failure := map[string]interface{}{}
		convey.So(jsoniter.Unmarshal([]byte(stderr), &failure), convey.ShouldBeNil)
		convey.So(failure["statusCode"], convey.ShouldEqual, float64(500))
		convey.So(failure["body"], convey.ShouldResemble, map[string]interface{}{"message": "Generic error"})
	})
	convey.Convey("test render with bad input", t, func() {
		_, _, err := runRender(fs, "/missing.json")
		convey.So(errors.Is(err, apiresponse.ErrDescriptorRead), convey.ShouldBeTrue)
		_, _, err = runRender(fs, "/ok.json", "--mode", "lambda")
		convey.So(errors.Is(err, apiresponse.ErrInvalidMode), convey.ShouldBeTrue)
		_, _, err = runRender(fs, "/ok.json", "--config", "/conf-invalid")
		convey.So(errors.Is(err, apiresponse.ErrInvalidMode), convey.ShouldBeTrue)
		_, _, err = runRender(fs, "/ok.json", "--config", "/nowhere")
		convey.So(err, convey.ShouldNotBeNil)
		_, _, err = runRender(fs)
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestBindModeFlag(t *testing.T) {
	convey.Convey("test bind the mode flag of the render command", t, func() {
		config := apiresponse.NewConfiguration()
		renderCmd := newRenderCmd(afero.NewMemMapFs())
		convey.So(bindModeFlag(config, renderCmd), convey.ShouldBeNil)
		convey.So(renderCmd.Flags().Set("mode", "offline"), convey.ShouldBeNil)
		convey.So(config.GetString(apiresponse.ResponseModeKey), convey.ShouldEqual, "offline")
	})
	convey.Convey("test fail to bind a command without the mode flag", t, func() {
		err := bindModeFlag(apiresponse.NewConfiguration(), &cobra.Command{Use: "bare"})
		convey.So(err, convey.ShouldNotBeNil)
	})
}
