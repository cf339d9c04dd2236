package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/statuscheck/smoke-tests/testservice"

	"github.com/spf13/pflag"
)

func main() {
	port, err := readPort(os.Args, os.Stderr)
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Status check test service listening on %s", addr)
	if err := http.ListenAndServe(addr, testservice.New().Handler()); err != nil {
		log.Fatal(err)
	}
}

func readPort(args []string, errOut io.Writer) (int, error) {
	var port int
	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.IntVar(&port, "port", 8001, "port to listen on")
	if err := fs.Parse(args[1:]); err != nil {
		return 0, err
	}
	if fs.NArg() > 0 {
		return 0, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid port %d", port)
	}
	return port, nil
}
