package cache

import "strings"

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "readingquiz"

// Key builds "readingquiz:<objectType>:<id>[:<param>...]".
func Key(objectType, id string, params ...string) string {
	parts := append([]string{KeyPrefix, objectType, id}, params...)
	return strings.Join(parts, ":")
}

// QuizKey is the key of a serialized quiz.
func QuizKey(quizID string) string {
	return Key("quiz", quizID)
}

// AttemptKey is the key of a serialized graded attempt.
func AttemptKey(attemptID string) string {
	return Key("attempt", attemptID)
}

// ExportKey is the key of a rendered quiz export of the given kind.
func ExportKey(quizID, kind string) string {
	return Key("quiz", quizID, "export", kind)
}
