package types

import "time"

// Entry is a transcript entry. The three variants below are the only
// implementations; code consuming a transcript switches on the concrete type.
type Entry interface {
	Time() time.Time
	transcriptEntry()
}

// System is a status entry produced by the upload cycle.
type System struct {
	Content      string
	IsProcessing bool
	IsError      bool
	Timestamp    time.Time
}

// User is a question typed by the user.
type User struct {
	Content   string
	Timestamp time.Time
}

// Bot is an answer from the question-answering service.
type Bot struct {
	Content   string
	Citations []Citation
	Timestamp time.Time
}

// Citation points at a page of the document, as returned alongside an answer.
type Citation struct {
	Page int `json:"page"`
}

func (e System) Time() time.Time { return e.Timestamp }
func (e User) Time() time.Time   { return e.Timestamp }
func (e Bot) Time() time.Time    { return e.Timestamp }

func (System) transcriptEntry() {}
func (User) transcriptEntry()   {}
func (Bot) transcriptEntry()    {}
