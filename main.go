package main

import (
	"github.com/bobuhiro11/gocpuid/flag"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := flag.Parse(); err != nil {
		logrus.Fatal(err)
	}
}
