package bufwav

// ChunkInfo describes one chunk met while scanning a RIFF/WAVE stream.
type ChunkInfo struct {
	ID [4]byte
	// Size is the length declared in the chunk header.
	Size uint32
	// Offset is the byte position of the chunk header in the stream.
	Offset int64
}

func (c ChunkInfo) String() string {
	return string(c.ID[:])
}

func cloneChunkInfos(chunks []ChunkInfo) []ChunkInfo {
	if len(chunks) == 0 {
		return nil
	}

	return append([]ChunkInfo(nil), chunks...)
}
