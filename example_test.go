package errlink_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/xgx-io/errlink"
)

func ExampleWrap() {
	readHeader := func() error {
		return errlink.Wrap(io.ErrUnexpectedEOF, "read header")
	}
	loadConfig := func() error {
		return errlink.Wrap(readHeader(), "load config")
	}

	err := loadConfig()
	fmt.Println(err)
	fmt.Println(errlink.DepthOf(err))
	fmt.Println(errlink.Wrap(nil, "unused") == nil)
	// Output:
	// load config: read header: unexpected EOF
	// 3
	// true
}

type status int

const statusNotReady status = 1

func (s status) String() string { return "service not ready" }

func ExampleNew() {
	head := errlink.New(statusNotReady)
	if head.Payload == statusNotReady {
		fmt.Println("typed head:", head.Payload)
	}

	linked := head.Link("start worker")
	fmt.Println(linked.Messages())
	// Output:
	// typed head: service not ready
	// [start worker service not ready]
}

func ExampleReplace() {
	chain := errlink.New(errors.New("ugly driver text")).Link("query users")
	clean := errlink.Replace(chain, "users unavailable")

	fmt.Println(clean, clean.Depth() == chain.Depth())
	// Output:
	// users unavailable: ugly driver text true
}

func ExampleConvert() {
	chain := errlink.New(int8(8))
	wide := errlink.Convert(chain, func(v int8) int64 { return int64(v) * 1000 })

	fmt.Println(wide.Payload)
	// Output:
	// 8000
}

func ExampleHeadOf() {
	err := fmt.Errorf("handler: %w", errlink.New(statusNotReady))
	if s, ok := errlink.HeadOf[status](err); ok {
		fmt.Println(s)
	}
	// Output:
	// service not ready
}
