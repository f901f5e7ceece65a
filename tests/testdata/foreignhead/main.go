package main

import "github.com/funvibe/intrusive/pkg/list"

type pendingTag struct{}
type doneTag struct{}

type job struct {
	id      int
	pending list.Item[job, pendingTag]
	done    list.Item[job, doneTag]
}

func main() {
	var pendingList list.Head[job, pendingTag]
	var doneList list.Head[job, doneTag]

	var j job
	pendingList.Insert(&j.pending)
	doneList.Insert(&j.pending) // pending item into the done list: must not type-check
}
