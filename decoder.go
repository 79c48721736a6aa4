package tga

// state tracks how far a decoder got through the pipeline.
type state int

const (
	stateUnloaded state = iota
	stateHeaderRead
	stateValidated
	stateDataRead
	stateChannelsNormalized
	stateLoaded
	stateFailed
)

// decoder holds the state of one decode. It is reset before going back to the pool.
type decoder struct {
	src   *source
	name  string // Source identifier for error messages.
	head  header
	pix   []byte // Pixel data, owned by the decoder until the image is handed out.
	state state
	img   *Image // Set once the decoder reaches stateLoaded.
	err   error  // Set once the decoder reaches stateFailed.
}

// reset clears the decoder state for reuse.
func (d *decoder) reset() {
	*d = decoder{}
}

// fail moves the decoder into the terminal failed state and drops any partial buffer.
func (d *decoder) fail(stage Stage, err error) error {
	d.pix = nil
	d.state = stateFailed
	d.err = &DecodeError{Stage: stage, Name: d.name, Depth: d.head.depth, Err: err}

	return d.err
}

// decodeHeader runs the header reader and the format validator.
// Both checks complete before any pixel memory is allocated.
func (d *decoder) decodeHeader() error {
	if d.state >= stateValidated {
		if d.state == stateFailed {
			return d.err
		}

		return nil
	}

	h, err := readHeader(d.src)
	if err != nil {
		return d.fail(StageHeader, err)
	}

	d.head = h
	d.state = stateHeaderRead

	if err := d.head.validateType(); err != nil {
		return d.fail(StageValidate, err)
	}

	if err := d.head.validateDepth(); err != nil {
		return d.fail(StageValidate, err)
	}

	d.state = stateValidated

	return nil
}

// readPixels skips the image identification field and reads the raw pixel payload in stored order.
func (d *decoder) readPixels() error {
	if err := d.src.skip(int64(d.head.idLength)); err != nil {
		return d.fail(StageData, err)
	}

	pix, err := d.src.readPayload(d.head.payloadSize())
	if err != nil {
		return d.fail(StageData, err)
	}

	if pix == nil {
		return d.fail(StageData, ErrEmptyResult)
	}

	d.pix = pix
	d.state = stateDataRead

	return nil
}

// decode runs the full pipeline. Calling it again on a loaded decoder returns
// the same image without touching the stream.
func (d *decoder) decode() (*Image, error) {
	switch d.state {
	case stateLoaded:
		return d.img, nil
	case stateFailed:
		return nil, d.err
	}

	if err := d.decodeHeader(); err != nil {
		return nil, err
	}

	if err := d.readPixels(); err != nil {
		return nil, err
	}

	channels := d.head.channels()

	swapRB(d.pix, channels)
	d.state = stateChannelsNormalized

	orient(d.pix, d.head.width, d.head.height, channels, d.head.flipHorizontal(), d.head.flipVertical())

	d.img = &Image{
		Width:    d.head.width,
		Height:   d.head.height,
		Channels: channels,
		Pix:      d.pix,
	}
	d.pix = nil
	d.state = stateLoaded

	return d.img, nil
}
