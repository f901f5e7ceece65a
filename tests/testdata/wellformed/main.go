package main

import (
	"unsafe"

	"github.com/funvibe/intrusive/pkg/list"
)

type vipTag struct{}
type hipTag struct{}

type foo struct {
	something int
	vip       list.Item[foo, vipTag]
	hip       list.Item[foo, hipTag]
}

var (
	vipOwner = list.At[foo, vipTag](unsafe.Offsetof(foo{}.vip))
	hipOwner = list.At[foo, hipTag](unsafe.Offsetof(foo{}.hip))
)

func main() {
	var vipList list.Head[foo, vipTag]
	var hipList list.Head[foo, hipTag]

	var a, b foo
	vipList.Insert(&a.vip)
	hipList.Insert(&a.hip)
	vipList.Insert(&b.vip)

	for q := range vipList.Items() {
		vipOwner.From(q).something++
	}
	for q := hipList.Front(); q != nil; q = q.Next() {
		hipOwner.From(q).something++
	}
}
