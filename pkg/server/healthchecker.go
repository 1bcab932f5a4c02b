package server

import (
	"context"
	"os/exec"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// BinaryHealthChecker reports healthy while an external binary the service
// shells out to can be found on PATH.
type BinaryHealthChecker struct {
	binary   string
	lookPath func(string) (string, error)
}

func NewBinaryHealthChecker(binary string) *BinaryHealthChecker {
	return &BinaryHealthChecker{
		binary:   binary,
		lookPath: exec.LookPath,
	}
}

func (hc *BinaryHealthChecker) Healthy(ctx context.Context) bool {
	_, err := hc.lookPath(hc.binary)
	return err == nil
}
