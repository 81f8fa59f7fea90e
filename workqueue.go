package main

import (
	"github.com/joshvictor1024/go-julia/pkg/types"
)

// 1 ctrl M send N recv
type bandQueue struct {
	cq *types.ControlledQueue[*bandWork]
}

func newBandQueue() *bandQueue {
	return &bandQueue{
		cq: types.NewControlledQueue[*bandWork](),
	}
}

// call from control
// only call once
func (bq *bandQueue) close() {
	bq.cq.Close()
}

// return false if closed and not sent
func (bq *bandQueue) send(bw *bandWork) bool {
	return bq.cq.Send(bw)
}

// blocks until work arrives or the queue closes
func (bq *bandQueue) recv() (*bandWork, bool) {
	return bq.cq.Recv()
}
