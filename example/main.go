package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/wetrycode/apiresponse"
)

func main() {
	finalizer := apiresponse.NewFinalizer(apiresponse.WithLogger(apiresponse.GetLogger("example")))

	cookies := apiresponse.NewCookies().SetOptions("session", apiresponse.CookieOptions{
		Value:    "abc",
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		Expires:  apiresponse.ExpiresAt(time.Now().Add(24 * time.Hour)),
	})
	envelope, err := finalizer.Send(apiresponse.NewResponse(
		map[string]interface{}{"id": 1, "name": "foo"},
		apiresponse.ResponseWithStatus(201),
		apiresponse.ResponseWithCookies(cookies),
	))
	if err != nil {
		panic(err)
	}
	output, _ := finalizer.Output(envelope)
	fmt.Println(string(output))

	notFound := apiresponse.NewHTTPError(404, "user not found", apiresponse.HTTPErrorWithBody(map[string]interface{}{
		"message":          "user not found",
		"messageVariables": map[string]interface{}{"ids": []int{1, 2}, "filter": nil},
	}))
	_, err = finalizer.SendError(fmt.Errorf("load user: %w", notFound))
	var envelopeErr *apiresponse.EnvelopeError
	if errors.As(err, &envelopeErr) {
		fmt.Println(envelopeErr.StatusCode(), err.Error())
	}
}
