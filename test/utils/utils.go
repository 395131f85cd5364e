package utils

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

func WaitForPredicateToBeTrue(predicate func() bool) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if predicate() {
				return true
			}
		}
	}
}

func Expect(err error, message string) {
	if err != nil {
		panic(fmt.Sprintf(message+" Error : %s", err))
	}
}

// GetFreePort asks the kernel for a free open port that is ready to use.
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	// release for now so it can be bound by the actual server
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

func WaitForServiceUp(port int) {
	if !WaitForPredicateToBeTrue(func() bool {
		resp, err := http.Get("http://localhost:" + strconv.Itoa(port) + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}) {
		panic("failed to start broker")
	}
}
