package yad

import "github.com/KingsBeCattz/yad/internal/pool"

// Encode serializes c to its wire form, per §4.7. It borrows a pooled
// buffer for the duration of the call (mirroring the teacher's
// pool.GetBlobBuffer/PutBlobBuffer discipline) and returns a fresh,
// caller-owned copy before the pooled buffer goes back to the pool.
func Encode(c *Container) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := encodeContainer(buf, c); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
