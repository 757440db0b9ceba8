package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"

	"go.etcd.io/bbolt"

	"godreidel/dreidel"
	"godreidel/utils"
)

var BucketNotFound = errors.New("bucket not found")

var spinsBucketName = []byte("spins")

// SpinRecord is one recorded spin outcome. Only results are stored; the
// generator state itself never touches disk.
type SpinRecord struct {
	Time time.Time
	Face string
}

func GetSessionBucket(tx *bbolt.Tx, sessionName string) (sessionBucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		sessionBucket, err = tx.CreateBucketIfNotExists([]byte(sessionName))
	} else {
		sessionBucket = tx.Bucket([]byte(sessionName))
		if sessionBucket == nil {
			err = BucketNotFound
		}
	}
	return
}

func GetChildBucket(tx *bbolt.Tx, sessionBucket *bbolt.Bucket, name []byte) (childBucket *bbolt.Bucket, err error) {
	if tx.Writable() {
		childBucket, err = sessionBucket.CreateBucketIfNotExists(name)
	} else {
		childBucket = sessionBucket.Bucket(name)
		if childBucket == nil {
			err = BucketNotFound
		}
	}
	return
}

func WriteSpin(db *bbolt.DB, sessionName string, t time.Time, face dreidel.Face) error {
	return db.Update(func(tx *bbolt.Tx) error {
		var err error
		var sessionBucket, spinsBucket *bbolt.Bucket
		if sessionBucket, err = GetSessionBucket(tx, sessionName); err != nil {
			return err
		}
		if spinsBucket, err = GetChildBucket(tx, sessionBucket, spinsBucketName); err != nil {
			return err
		}
		var buf bytes.Buffer
		encoder := gob.NewEncoder(&buf)
		if err = encoder.Encode(&SpinRecord{Time: t, Face: face.String()}); err != nil {
			return err
		}
		return spinsBucket.Put(utils.TimeToBytes(t), buf.Bytes())
	})
}

// SessionCounts tallies the recorded spins of a session by face name.
func SessionCounts(db *bbolt.DB, sessionName string) (counts map[string]uint64, err error) {
	counts = map[string]uint64{}
	err = db.View(func(tx *bbolt.Tx) error {
		var sessionBucket, spinsBucket *bbolt.Bucket
		var err error
		if sessionBucket, err = GetSessionBucket(tx, sessionName); err != nil {
			return err
		}
		if spinsBucket, err = GetChildBucket(tx, sessionBucket, spinsBucketName); err != nil {
			return err
		}
		cursor := spinsBucket.Cursor()
		for key, value := cursor.First(); key != nil; key, value = cursor.Next() {
			var record SpinRecord
			decoder := gob.NewDecoder(bytes.NewReader(value))
			if err = decoder.Decode(&record); err != nil {
				return err
			}
			counts[record.Face] += 1
		}
		return nil
	})
	return
}

func GetKnownSessions(db *bbolt.DB) (sessionNames []string, err error) {
	err = db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			sessionNames = append(sessionNames, string(name))
			return nil
		})
	})
	return
}
