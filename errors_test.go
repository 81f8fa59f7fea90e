package main

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCheckError_WarningContinues(t *testing.T) {
	// reaching the end of the test means neither call exited
	checkError(nil, testLogger(), fatal)
	checkError(errors.New("texture already destroyed"), testLogger(), warning)
}

func TestCanvas_CloseWithoutTexture(t *testing.T) {
	c := &canvas{}
	if err := c.close(); err != nil {
		t.Errorf("close() on empty canvas = %v, want nil", err)
	}
}
