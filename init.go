// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package apiresponse

import (
	"sync"
)

var onceInit sync.Once
var defaultFinalizer *Finalizer

func init() {
	onceInit.Do(func() {
		initSettings()
		initLog()
		defaultFinalizer = NewFinalizer()
	})

}

// DefaultFinalizer the gateway mode finalizer behind the package level helpers
func DefaultFinalizer() *Finalizer {
	return defaultFinalizer
}

// Send finalize response with the default finalizer
func Send(response *Response) (*Envelope, error) {
	return defaultFinalizer.Send(response)
}

// SendError finalize err with the default finalizer
func SendError(err error) (*Envelope, error) {
	return defaultFinalizer.SendError(err)
}
