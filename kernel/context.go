package kernel

// Context provides task-local access to kernel operations. It is handed to
// Task.Step for the duration of a single cooperative step and must not be
// retained past it.
type Context struct {
	k      *Kernel
	taskID TaskID

	blocked     bool
	blockOnTick bool
	blockOn     Endpoint
}

// TaskID returns the current task's ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	if !epCap.valid() || !epCap.canRecv() {
		return Message{}, false
	}
	return c.k.recv(epCap.ep)
}

// Recv reads one message, parking the task (via the blocked flag the
// scheduler inspects after Step returns) if the endpoint is empty.
func (c *Context) Recv(epCap Capability) (Message, bool) {
	msg, ok := c.TryRecv(epCap)
	if ok {
		return msg, true
	}
	if !epCap.valid() || !epCap.canRecv() {
		return Message{}, false
	}
	c.blocked = true
	c.blockOnTick = false
	c.blockOn = epCap.ep
	return Message{}, false
}

// BlockOnTick parks the task until the kernel's next Tick call.
func (c *Context) BlockOnTick() {
	c.blocked = true
	c.blockOnTick = true
}

// Send delivers a message to toCap, tagging it as sent from fromCap.
func (c *Context) Send(fromCap, toCap Capability, kind uint16, payload []byte) bool {
	return c.SendCapResult(fromCap, toCap, kind, payload, Capability{}) == SendOK
}

// SendCapResult delivers a message and transfers an optional capability.
func (c *Context) SendCapResult(fromCap, toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !fromCap.valid() {
		return SendErrInvalidFromCap
	}
	if !fromCap.canSend() {
		return SendErrFromNoSendRight
	}
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(fromCap.ep, toCap.ep, kind, payload, xfer)
}

// SendTo delivers a message with no authenticated sender (From is 0).
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) bool {
	if !toCap.valid() || !toCap.canSend() {
		return false
	}
	return c.k.send(0, toCap.ep, kind, payload, Capability{}) == SendOK
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (c *Context) NewEndpoint(rights Rights) Capability {
	return c.k.NewEndpoint(rights)
}
