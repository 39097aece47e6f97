package main

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v2"
)

var (
	framesBucket     = []byte("frames")
	animationsBucket = []byte("animations")
)

// ResourceFile packs sliced frames
// into a single bolt database.
type ResourceFile struct {
	db *bolt.DB
}

// OpenResourceFile opens or creates the resource file at path.
func OpenResourceFile(path string) (*ResourceFile, error) {
	db, err := bolt.Open(path, 0666, nil)

	if err != nil {
		return nil, err
	}

	return &ResourceFile{db: db}, nil
}

// Close closes the underlying database.
func (r *ResourceFile) Close() error {
	return r.db.Close()
}

func frameKey(anim string, col int) []byte {
	return []byte(fmt.Sprintf("%s/%02d", anim, col))
}

func animationKey(set, anim string) []byte {
	return []byte(set + "/" + anim)
}

// PutSet stores the encoded frames of a set
// along with its animation metadata.
func (r *ResourceFile) PutSet(meta SetMeta, frames []Frame) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		framesBuck, err := tx.CreateBucketIfNotExists(framesBucket)

		if err != nil {
			return err
		}

		setBuck, err := framesBuck.CreateBucketIfNotExists([]byte(meta.Set))

		if err != nil {
			return err
		}

		for _, frame := range frames {
			err = setBuck.Put(frameKey(frame.Animation, frame.Column), frame.Data)

			if err != nil {
				return err
			}
		}

		animBuck, err := tx.CreateBucketIfNotExists(animationsBucket)

		if err != nil {
			return err
		}

		for _, anim := range meta.Animations {
			data, err := yaml.Marshal(anim)

			if err != nil {
				return err
			}

			err = animBuck.Put(animationKey(meta.Set, anim.Name), data)

			if err != nil {
				return err
			}
		}

		return nil
	})
}

// ReadFrame returns the PNG bytes of a stored frame.
func (r *ResourceFile) ReadFrame(set, anim string, col int) ([]byte, error) {
	var data []byte

	err := r.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(framesBucket)

		if buck == nil {
			return fmt.Errorf("the frames bucket not found")
		}

		setBuck := buck.Bucket([]byte(set))

		if setBuck == nil {
			return fmt.Errorf("set '%s' not found", set)
		}

		value := setBuck.Get(frameKey(anim, col))

		if value == nil {
			return fmt.Errorf(
				"frame '%s/%02d' not found in set '%s'", anim, col, set)
		}

		// Values are only valid for the lifetime of the transaction.
		data = append([]byte(nil), value...)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}

// ReadAnimation returns the stored metadata of an animation.
func (r *ResourceFile) ReadAnimation(set, anim string) (AnimationMeta, error) {
	var meta AnimationMeta

	err := r.db.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket(animationsBucket)

		if buck == nil {
			return fmt.Errorf("the animations bucket not found")
		}

		value := buck.Get(animationKey(set, anim))

		if value == nil {
			return fmt.Errorf("animation '%s/%s' not found", set, anim)
		}

		return yaml.Unmarshal(value, &meta)
	})

	if err != nil {
		return AnimationMeta{}, err
	}

	return meta, nil
}
