package main

import (
	"github.com/Crystalsage/lux/shared/comms"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc"
	"encoding/gob"
	"context"
	"strconv"
	"strings"
	"unicode"
	"bytes"
	"net"
	"log"
	"fmt"
)

// Registrar implements the comms.RegistrationServer interface.
type Registrar struct {
	sys *system
}

// Register registers a worker with the master.
// The worker receives a gob snapshot of the render configuration and
// the scene.  The scene never changes once rendering starts, so no
// locking is needed to encode it.
func (r *Registrar) Register(ctx context.Context, req *comms.WorkerLink) (*comms.MasterState, error) {
	// Get the worker's sending address.
	worker, exists := peer.FromContext(ctx)
	if !exists {
		return nil, fmt.Errorf("could not derive worker's address")
	}

	// Compute the worker's recieving address.
	addr := strings.Join([]string{strings.TrimRightFunc(worker.Addr.String(), unicode.IsNumber), strconv.FormatUint(uint64(req.GetPort()), 10)}, "")

	// Encode the render configuration and the scene.
	writer := bytes.Buffer{}
	encoder := gob.NewEncoder(&writer)
	if err := encoder.Encode(r.sys.cfg); err != nil {
		return nil, err
	}
	if err := encoder.Encode(r.sys.env); err != nil {
		return nil, err
	}

	// Add the worker to the pool.
	if err := r.sys.workers.Add(addr); err != nil {
		return nil, err
	}
	log.Printf("Registered worker at %s.\n", addr)

	return &comms.MasterState{State: writer.Bytes()}, nil
}

// newRegistrar sets up a new registration server.
func newRegistrar(sys *system, server *grpc.Server, registrationPort uint) {
	// Set up the registration server.
	comms.RegisterRegistrationServer(server, &Registrar{sys: sys})

	// Create a listener for the workers.
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", registrationPort))
	if err != nil {
		log.Fatalf("Failed to listen on port \"%d\": %v.\n", registrationPort, err)
	}

	// Serve incoming registration orders.
	if err = server.Serve(listener); err != nil {
		log.Fatalf("Registrar interrupted: %v.\n", err)
	}
}
