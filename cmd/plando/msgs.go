package main

import (
	"plando"
)

type InitViewMsg struct {
	title string
	tasks []plando.Task
}
