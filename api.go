package bufwav

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (d *Decoder) FormatChunk() *FmtChunk {
	if d == nil || d.fmtChunk == nil {
		return nil
	}

	return d.fmtChunk.Clone()
}

// Format returns the sample encoding of the decoded stream, or 0 before a
// fmt chunk was accepted.
func (d *Decoder) Format() Format {
	if d == nil {
		return 0
	}

	return d.format
}

// Chunks returns the chunks met on the last scan of the stream, in order.
// Chunks ahead of the fmt chunk are listed once.
func (d *Decoder) Chunks() []ChunkInfo {
	if d == nil {
		return nil
	}

	return cloneChunkInfos(d.chunks)
}

// FormatChunk returns the fmt chunk the encoder writes for buf.
func (e *Encoder) FormatChunk(buf *Buffer) *FmtChunk {
	if e == nil || buf == nil || !e.Format.Valid() {
		return nil
	}

	return newFmtChunk(e.Format, buf.Channels(), uint32(buf.SampleRate))
}
