// Package pool provides a worker pool object for use by the master.
package pool

import (
	"github.com/Crystalsage/lux/shared/comms"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"context"
	"sync"
	"time"
	"log"
	"fmt"
)

// HeartbeatFrequency controls how often heartbeats are sent to each worker in a pool.
const HeartbeatFrequency uint = 500

// HeartbeatTimeout controls how long heartbeats are waited on before the associated worker is assumed to be disconnected.
const HeartbeatTimeout uint = 1000

// worker represents an entry in a pool.
type worker struct {
	connection *grpc.ClientConn
	stopHeartbeats chan struct{}
	closing bool

	tasks uint
	index int
}

// Pool represents a threadsafe worker pool.
// Workers are kept in a min-heap ordered by outstanding task count, so
// the least busy worker is always at the root.
type Pool struct {
	mu sync.RWMutex
	heap []*worker
	addresses map[string]*worker
}

// NewPool creates a new worker pool with a given initial capacity.
func NewPool(c uint) Pool {
	return Pool{
		heap: make([]*worker, 0, c),
		addresses: make(map[string]*worker),
	}
}

// Destroy cleans up a worker pool.
func (p *Pool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Close all the open connections.
	for a, w := range p.addresses {
		p.remove(a, w)
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() uint {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return uint(len(p.heap))
}

// swap swaps two workers in the heap.
// This function assumes that the heap has already been locked.
func (p *Pool) swap(i, j int) {
	p.heap[i], p.heap[j] = p.heap[j], p.heap[i]
	p.heap[i].index = i
	p.heap[j].index = j
}

// bubbleUp pushes a worker up the heap as long as it has fewer tasks than its parent.
// This function assumes that the heap has already been locked.
func (p *Pool) bubbleUp(w *worker) {
	if w == nil || w.index >= len(p.heap) || p.heap[w.index] != w {
		return
	}

	for i := w.index; i > 0; {
		parent := (i - 1) / 2
		if p.heap[i].tasks < p.heap[parent].tasks {
			p.swap(i, parent)
			i = parent
		}else{
			break
		}
	}
}

// bubbleDown pushes a worker down the heap as long as it has more tasks than one of its children.
// This function assumes that the heap has already been locked.
func (p *Pool) bubbleDown(w *worker) {
	if w == nil || w.index >= len(p.heap) || p.heap[w.index] != w {
		return
	}

	for i := w.index; 2 * i + 1 < len(p.heap); {
		// Pick the child with fewer tasks.
		child := 2 * i + 1
		if right := child + 1; right < len(p.heap) && p.heap[right].tasks < p.heap[child].tasks {
			child = right
		}

		if p.heap[i].tasks > p.heap[child].tasks {
			p.swap(i, child)
			i = child
		}else{
			break
		}
	}
}

// Assign assigns a stripe order to the worker who is the least busy.
// The returned channel yields the stripe's results, or closes without a
// value if the worker failed to trace it.
func (p *Pool) Assign(order *comms.StripeOrder, timeout uint) (<-chan *comms.StripeResults, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.heap) == 0 {
		return nil, fmt.Errorf("no workers to which stripe %d (of stride %d) can be assigned", order.GetOffset(), order.GetStride())
	}

	resultsCh := make(chan *comms.StripeResults)
	assignee := p.heap[0]

	// Assign the task and re-arrange the heap.
	assignee.tasks += 1
	p.bubbleDown(assignee)

	// Perform the task.
	go func(out chan<- *comms.StripeResults, client comms.TraceClient) {
		defer close(out)

		// Create a timeout for the trace operation.
		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond * time.Duration(timeout))
		defer cancel()

		// Attempt to trace.
		results, err := client.TraceStripe(ctx, order)
		if err == nil {
			out <- results
		}else{
			log.Printf("Failed to trace stripe %d: %v.\n", order.GetOffset(), err)
		}

		func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			// Complete the task and re-arrange the heap (if the assignee is still in it).
			assignee.tasks -= 1
			if assignee.index < len(p.heap) && p.heap[assignee.index] == assignee {
				p.bubbleUp(assignee)
			}

			// If this is the worker's last task, close the connection.
			if assignee.closing && assignee.tasks == 0 {
				assignee.connection.Close()
			}
		}()
	}(resultsCh, comms.NewTraceClient(assignee.connection))

	return resultsCh, nil
}

// remove removes a worker with some address from a pool.
// This function assumes that the pool has already been locked.
// This function also assumes that address refers to w, and that w is in the pool.
func (p *Pool) remove(address string, w *worker) {
	wIndex := w.index

	// Remove the worker from the pool.
	delete(p.addresses, address)
	p.swap(len(p.heap) - 1, wIndex)
	p.heap = p.heap[:len(p.heap) - 1]

	// If necessary, re-arrange the heap.
	if wIndex < len(p.heap) {
		p.bubbleDown(p.heap[wIndex])
	}

	// Close the worker and disconnect if there are no remaining tasks.
	w.closing = true
	if w.tasks == 0 {
		w.connection.Close()
	}
}

// heartbeat periodically sends out heartbeat messages to a worker.
// This function should be spun off as a goroutine.
func (p *Pool) heartbeat(w *worker) {
	for beat := true; beat; {
		select{
		case <-w.stopHeartbeats:
			beat = false
		case <-time.After(time.Millisecond * time.Duration(HeartbeatFrequency)):
			func() {
				// Because ClientConn objects are threadsafe, we don't need to lock.
				client := comms.NewTraceClient(w.connection)

				// Set up a timeout for the heartbeat.
				ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond * time.Duration(HeartbeatTimeout))
				defer cancel()

				// Attempt to send a heartbeat.
				if _, err := client.Heartbeat(ctx, &empty.Empty{}); err != nil {
					log.Printf("Failed to send heartbeat: %v.\n", err)

					func() {
						p.mu.Lock()
						defer p.mu.Unlock()

						// Find whether the worker is in the pool, then remove it if it is.
						for a, wInternal := range p.addresses {
							if w == wInternal {
								p.remove(a, w)
								break
							}
						}
					}()

					beat = false
				}
			}()
		}
	}
}

// Add adds a new worker to the pool.
func (p *Pool) Add(address string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.addresses[address]; !exists {
		// Connect to the worker.
		// This ClientConn is threadsafe.
		conn, err := grpc.Dial(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}

		// Set up a new worker.
		w := &worker{connection: conn, stopHeartbeats: make(chan struct{}), closing: false, tasks: 0, index: len(p.heap)}

		// Add the worker to the pool.
		p.addresses[address] = w
		p.heap = append(p.heap, w)
		p.bubbleUp(w)

		// Spin off a goroutine to send the worker heartbeats.
		go p.heartbeat(w)
	}

	return nil
}

// Remove removes a worker from the pool.
func (p *Pool) Remove(address string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, exists := p.addresses[address]; exists {
		// Stop the worker from recieving heartbeats.
		w.stopHeartbeats <- struct{}{}

		p.remove(address, w)
	}
}
