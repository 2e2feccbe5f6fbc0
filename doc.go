// Package bufwav reads and writes plain RIFF/WAVE files to and from an
// in-memory sample buffer.
//
// Three encodings are supported in both directions: 16-bit and 24-bit
// integer PCM, and 32-bit IEEE float. Files are decoded whole; chunks other
// than fmt and data are skipped.
//
// A Buffer stores interleaved float64 samples with a frame window that can
// hide leading frames:
//
//	buf, err := bufwav.ReadFile("in.wav")
//	if err != nil {
//		return err
//	}
//
//	buf.MakeMono()
//	buf.Normalise(false, bufwav.DefaultNormaliseLevel)
//
//	err = bufwav.WriteFile("out.wav", buf, bufwav.PCM24)
//
// Errors carry a Code (IOError, FormatError, Unsupported, WeirdConfig) and
// match the ErrIO, ErrFormat, ErrUnsupported and ErrWeirdConfig sentinels
// with errors.Is.
package bufwav
