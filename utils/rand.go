package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

func SecureRandomSeed() int64 {
	var seed int64
	randomBytes := make([]byte, 8)
	_, err := rand.Read(randomBytes)
	if err != nil {
		fmt.Println("Error generating random seed:", err)
		return time.Now().UnixNano()
	}
	seed = int64(binary.LittleEndian.Uint64(randomBytes))
	return int64(math.Abs(float64(seed)))
}

func RandBytesChar(n int) []byte {
	alphabet := make([]byte, 0)
	alphabet = append(alphabet, byte('A'+SecureRandomSeed()%26))
	for i := 0; i < n; i++ {
		alphabet = append(alphabet, byte('a'+SecureRandomSeed()%26))
	}
	return alphabet
}

func RandBytesInt(n int) []byte {
	alphabet := make([]byte, 0)
	alphabet = append(alphabet, byte('0'+SecureRandomSeed()%10))
	for i := 0; i < n; i++ {
		alphabet = append(alphabet, byte('0'+SecureRandomSeed()%10))
	}
	return alphabet
}
