// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

// bufferSyncState is the per-buffer bookkeeping a queue's command-list
// replay consults to decide whether a usage needs a barrier before it can
// proceed, and what that barrier's stage/access masks are.
//
// A buffer accumulates reads without a barrier between them (multiple reads
// never conflict), but a write always needs to wait for every prior read and
// the prior write to finish, and a read following a write always needs to
// wait for that write.
type bufferSyncState struct {
	readUsage  BufferUsage
	readStages ShaderStage

	lastWriteUsage BufferUsage
	lastWriteStage ShaderStage

	// lastUsageSerial is the serial of the command list that last used this
	// buffer on lastUsedQueue. A destroy is safe to run once the owning
	// queue's completed serial reaches this value.
	lastUsageSerial Serial
	lastUsedQueue   *Queue
}

// BufferTracker owns one buffer's cross-submission synchronization state.
// A Buffer embeds one BufferTracker; callers never construct it directly.
type BufferTracker struct {
	state bufferSyncState
}

// BufferBarrier describes the pipeline-stage/access transition a buffer
// usage needs before it can be recorded. Range is the whole buffer: buffers
// are not currently subdivided for barrier purposes the way textures are.
type BufferBarrier struct {
	SrcStage  ShaderStage
	SrcAccess BufferUsage
	DstStage  ShaderStage
	DstAccess BufferUsage
}

// TransitionUsage computes the barrier (if any) needed to move a buffer from
// its previously recorded usage to newUsage at newStages, recorded as part
// of commandListSerial on queue, and updates the tracker to reflect the new
// state. It returns ok == false when no barrier is needed.
func (t *BufferTracker) TransitionUsage(newUsage BufferUsage, newStages ShaderStage, queue *Queue, commandListSerial Serial) (BufferBarrier, bool) {
	s := &t.state
	isReadOnly := newUsage.IsReadOnly()

	var barrier BufferBarrier
	needsBarrier := false

	transfer := s.lastUsedQueue != nil && s.lastUsedQueue != queue

	switch {
	case isReadOnly && newUsage&^s.readUsage == 0 && newStages&^s.readStages == 0 && !transfer:
		// Already covered by the reads accumulated since the last write: no
		// barrier is needed.
	case isReadOnly:
		// A read following a write needs to wait for that write, and a read
		// on another queue for the previous queue's use. Either way the new
		// usage and stages join the accumulated reads for later readers.
		if s.lastWriteUsage != BufferUsageNone || transfer {
			barrier = BufferBarrier{
				SrcStage:  s.lastWriteStage,
				SrcAccess: s.lastWriteUsage,
				DstStage:  newStages,
				DstAccess: newUsage,
			}
			needsBarrier = true
		}
		s.readUsage |= newUsage
		s.readStages |= newStages
	default:
		// A write always waits for every prior read and the prior write.
		srcStage := s.readStages | s.lastWriteStage
		srcAccess := s.readUsage | s.lastWriteUsage
		if srcStage != ShaderStageNone || srcAccess != BufferUsageNone || transfer {
			barrier = BufferBarrier{
				SrcStage:  srcStage,
				SrcAccess: srcAccess,
				DstStage:  newStages,
				DstAccess: newUsage,
			}
			needsBarrier = true
		}
		s.lastWriteUsage = newUsage
		s.lastWriteStage = newStages
		s.readUsage = BufferUsageNone
		s.readStages = ShaderStageNone
	}

	s.lastUsedQueue = queue
	t.MarkUsedInPendingCommandList(queue, commandListSerial)

	return barrier, needsBarrier
}

// MarkUsedInPendingCommandList records that this buffer is referenced by a
// not-yet-completed command list, so its destruction can be deferred until
// that list's serial has completed on the GPU.
func (t *BufferTracker) MarkUsedInPendingCommandList(queue *Queue, serial Serial) {
	if serial > t.state.lastUsageSerial || t.state.lastUsedQueue == nil {
		t.state.lastUsageSerial = serial
		t.state.lastUsedQueue = queue
	}
}

// LastUsage reports the serial and queue of the most recent command list to
// reference this buffer, used to gate deleter enqueue on completion.
func (t *BufferTracker) LastUsage() (Serial, *Queue) {
	return t.state.lastUsageSerial, t.state.lastUsedQueue
}

// ReadyForDestruction reports whether completedSerial on lastUsedQueue has
// caught up to the last command list that used this buffer, i.e. it is safe
// to free the underlying VkBuffer/VkDeviceMemory now.
func (t *BufferTracker) ReadyForDestruction(completedSerial Serial) bool {
	if t.state.lastUsedQueue == nil {
		return true
	}
	return completedSerial >= t.state.lastUsageSerial
}
