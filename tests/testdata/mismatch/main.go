package main

import "github.com/funvibe/intrusive/pkg/list"

type vipTag struct{}
type hipTag struct{}

type foo struct {
	something int
	vip       list.Item[foo, vipTag]
	hip       list.Item[foo, hipTag]
}

func main() {
	var vipList list.Head[foo, vipTag]
	var a foo
	vipList.Insert(&a.hip) // wrong field: must not type-check
}
