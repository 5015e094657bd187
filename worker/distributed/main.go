package main

import (
	"github.com/Crystalsage/lux/shared/comms"
	"github.com/Crystalsage/lux/shared/state"
	"github.com/Crystalsage/lux/worker/shared/render"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"encoding/gob"
	"context"
	"strconv"
	"bytes"
	"time"
	"net"
	"fmt"
	"log"
	"os"
)

// registerFrequency controls the minimum amount of time this worker will wait before trying to re-register itself after a failure.
const registerFrequency uint = 500

// traceTimeout controls how long this worker will wait for trace requests and heartbeats before closing its trace server.
const traceTimeout uint = 2000

// Tracer implements the comms.TraceServer interface.
type Tracer struct {
	// No lock here because we never mutate this data.
	cfg state.Config
	env *state.Environment
	resetTraceTimeout chan struct{}
}

// timeoutReset resets a tracer's trace timeout.
func (t *Tracer) timeoutReset() {
	defer func() {
		recover()
	}()

	// Try to reset the trace timeout.
	// If the channel is closed, this will panic and return immediately.
	t.resetTraceTimeout <- struct{}{}
}

// TraceStripe traces every pixel of one row stripe.
// Rows are packed into the result in ascending order as RGBA8 bytes.
func (t *Tracer) TraceStripe(ctx context.Context, req *comms.StripeOrder) (*comms.StripeResults, error) {
	t.timeoutReset()

	offset, stride := int(req.GetOffset()), int(req.GetStride())
	if stride <= 0 || offset < 0 || offset >= stride {
		return nil, fmt.Errorf("bad stripe (offset %d, stride %d)", offset, stride)
	}

	rows := (t.cfg.Height - offset + stride - 1) / stride
	pixels := make([]byte, 0, 4 * rows * t.cfg.Width)

	// For every pixel in every owned row...
	for j := offset; j < t.cfg.Height; j += stride {
		// Make sure the RPC hasn't been cancelled.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for i := 0; i < t.cfg.Width; i++ {
			r, g, b, a := render.ShadePixel(i, j, t.cfg, t.env).RGBA8()
			pixels = append(pixels, r, g, b, a)
		}
	}

	return &comms.StripeResults{Offset: req.GetOffset(), Stride: req.GetStride(), Pixels: pixels}, nil
}

// Heartbeat keeps the worker from disconnecting from the master.
func (t *Tracer) Heartbeat(ctx context.Context, req *empty.Empty) (*empty.Empty, error) {
	t.timeoutReset()

	return &empty.Empty{}, nil
}

// register registers this worker with the master at registerAddr for later communication on listenPort using the tracer it returns.
func register(registerAddr string, listenPort uint32) (Tracer, error) {
	// Connect to the master.
	conn, err := grpc.Dial(registerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return Tracer{}, err
	}
	defer conn.Close()

	// Create a registration client.
	client := comms.NewRegistrationClient(conn)

	// Attempt to register.
	stateMsg, err := client.Register(context.Background(), &comms.WorkerLink{Port: listenPort})
	if err != nil {
		return Tracer{}, err
	}
	if stateMsg.GetState() == nil {
		return Tracer{}, fmt.Errorf("no scene data recieved")
	}

	// Decode the render configuration and the scene.
	var cfg state.Config
	var env state.Environment
	decoder := gob.NewDecoder(bytes.NewBuffer(stateMsg.GetState()))
	if err = decoder.Decode(&cfg); err != nil {
		return Tracer{}, err
	}
	if err = decoder.Decode(&env); err != nil {
		return Tracer{}, err
	}

	return Tracer{cfg: cfg, env: &env, resetTraceTimeout: make(chan struct{})}, nil
}

func main() {
	// Make sure we have enough parameters.
	if len(os.Args) != 3 {
		log.Fatalln("Improper parameters.  This program requires the parameters:"+
			"\n\t(1) master address (including port)"+
			"\n\t(2) stripe order listening port")
	}

	// Parse the command line parameters.
	masterAddr := os.Args[1]
	orderPort, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Could not parse port number \"%s\": %v.\n", os.Args[2], err)
	}

	for {
		// Try to register.
		tracer, err := register(masterAddr, uint32(orderPort))
		if err == nil {
			// Set up the worker.
			server := grpc.NewServer()
			comms.RegisterTraceServer(server, &tracer)

			// Create a listener for the master.
			listener, err := net.Listen("tcp", fmt.Sprintf(":%d", orderPort))
			if err != nil {
				log.Fatalf("Failed to listen on port \"%d\": %v.\n", orderPort, err)
			}

			// Spin off a goroutine which closes the trace server if no requests come in within a timeout.
			go func() {
				for {
					select{
					case <-tracer.resetTraceTimeout:
					case <-time.After(time.Millisecond * time.Duration(traceTimeout)):
						close(tracer.resetTraceTimeout)
						server.GracefulStop()
						return
					}
				}
			}()

			// Serve incoming stripe orders.
			if err = server.Serve(listener); err != nil {
				log.Printf("Tracer interrupted: %v.\n", err)
			}else{
				log.Printf("Tracer timed out after recieving no orders or heartbeats.\n")
			}
		}else{
			log.Printf("Failed to register: %v.\n", err)
		}

		// Wait before trying to register again.
		time.Sleep(time.Millisecond * time.Duration(registerFrequency))
	}
}
