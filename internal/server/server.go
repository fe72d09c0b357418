// Package server owns the world and advances it on a background goroutine.
//
// The publish lock separates compute from publish: the worker computes the
// back buffers without holding it and takes it only for the O(1) buffer
// swap, so readers that lock (or try-lock) the server almost never block.
// Writers (the growth controller and the paint interface) must hold the
// lock for any world-structure mutation.
package server

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"thermvox/internal/sim"
)

// pausedWait bounds the worker's nap while paused so stop and unpause are
// observed promptly.
const pausedWait = 5 * time.Millisecond

// Server drives the simulation on its own goroutine.
type Server struct {
	World *sim.World

	// Dt is the simulated seconds per frame. Set before Start.
	Dt float32

	// Workers > 1 fans the frame compute out across chunks.
	Workers int

	mu sync.Mutex // publish lock

	running atomic.Bool
	paused  atomic.Bool

	// Micro-pause after each frame to keep CPU sane; 0 yields instead.
	SleepMillis atomic.Int32

	frames atomic.Uint64

	wake chan struct{}
	done chan struct{}
}

// New returns a stopped server owning the given world.
func New(w *sim.World, dt float32) *Server {
	s := &Server{
		World: w,
		Dt:    dt,
		wake:  make(chan struct{}, 1),
	}
	s.SleepMillis.Store(1)
	return s
}

// Start spawns the worker goroutine if it is not already running.
func (s *Server) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.done = make(chan struct{})
	go s.run()
}

// Stop asks the worker to exit and wakes it if it is pausing.
func (s *Server) Stop() {
	s.running.Store(false)
	s.notify()
}

// Join blocks until the worker goroutine has exited. Safe to call on a
// server that never started.
func (s *Server) Join() {
	if s.done != nil {
		<-s.done
	}
}

// SetPaused pauses or resumes stepping.
func (s *Server) SetPaused(p bool) {
	s.paused.Store(p)
	if !p {
		s.notify()
	}
}

// IsPaused reports whether stepping is paused.
func (s *Server) IsPaused() bool { return s.paused.Load() }

// Frames returns the number of completed frames.
func (s *Server) Frames() uint64 { return s.frames.Load() }

// Lock acquires the publish lock.
func (s *Server) Lock() { s.mu.Lock() }

// Unlock releases the publish lock.
func (s *Server) Unlock() { s.mu.Unlock() }

// TryLock attempts the publish lock without blocking.
func (s *Server) TryLock() bool { return s.mu.TryLock() }

// StepOnce advances exactly one frame on the caller's goroutine, for
// headless and test use. Compute runs unlocked; the swap takes the publish
// lock briefly.
func (s *Server) StepOnce() {
	s.compute()
	s.mu.Lock()
	sim.SwapAll(s.World)
	s.mu.Unlock()
	s.frames.Add(1)
}

func (s *Server) compute() {
	if s.Workers > 1 {
		sim.ComputeFrameParallel(s.World, s.Dt, s.Workers)
		return
	}
	sim.ComputeFrame(s.World, s.Dt)
}

func (s *Server) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Server) run() {
	defer close(s.done)
	for s.running.Load() {
		if s.paused.Load() {
			select {
			case <-s.wake:
			case <-time.After(pausedWait):
			}
			continue
		}

		s.StepOnce()

		if ms := s.SleepMillis.Load(); ms > 0 {
			time.Sleep(time.Duration(ms) * time.Millisecond)
		} else {
			runtime.Gosched()
		}
	}
}
