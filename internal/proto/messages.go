package proto

import "time"

// Field numbers match aroha.proto.

type RegisterUserRequest struct {
	Username string
	Salt     []byte
	Verifier []byte
}

func (m *RegisterUserRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	b = appendBytes(b, 2, m.Salt)
	return appendBytes(b, 3, m.Verifier)
}

func (m *RegisterUserRequest) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.Username = f.str()
		case 2:
			m.Salt = append([]byte(nil), f.bytes...)
		case 3:
			m.Verifier = append([]byte(nil), f.bytes...)
		}
		return nil
	})
}

type RegisterUserResponse struct {
	UserId string
}

func (m *RegisterUserResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.UserId)
}

func (m *RegisterUserResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.UserId = f.str()
		}
		return nil
	})
}

type GetSaltRequest struct {
	Username string
}

func (m *GetSaltRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Username)
}

func (m *GetSaltRequest) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.Username = f.str()
		}
		return nil
	})
}

type GetSaltResponse struct {
	Salt []byte
}

func (m *GetSaltResponse) appendWire(b []byte) []byte {
	return appendBytes(b, 1, m.Salt)
}

func (m *GetSaltResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.Salt = append([]byte(nil), f.bytes...)
		}
		return nil
	})
}

type LoginRequest struct {
	Username          string
	VerifierCandidate []byte
}

func (m *LoginRequest) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Username)
	return appendBytes(b, 2, m.VerifierCandidate)
}

func (m *LoginRequest) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.Username = f.str()
		case 2:
			m.VerifierCandidate = append([]byte(nil), f.bytes...)
		}
		return nil
	})
}

type LoginResponse struct {
	UserId       string
	AccessToken  string
	RefreshToken string
}

func (m *LoginResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.UserId)
	b = appendString(b, 2, m.AccessToken)
	return appendString(b, 3, m.RefreshToken)
}

func (m *LoginResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.UserId = f.str()
		case 2:
			m.AccessToken = f.str()
		case 3:
			m.RefreshToken = f.str()
		}
		return nil
	})
}

type RefreshTokenRequest struct {
	RefreshToken string
}

func (m *RefreshTokenRequest) appendWire(b []byte) []byte {
	return appendString(b, 1, m.RefreshToken)
}

func (m *RefreshTokenRequest) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.RefreshToken = f.str()
		}
		return nil
	})
}

type RefreshTokenResponse struct {
	AccessToken  string
	RefreshToken string
}

func (m *RefreshTokenResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.AccessToken)
	return appendString(b, 2, m.RefreshToken)
}

func (m *RefreshTokenResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.AccessToken = f.str()
		case 2:
			m.RefreshToken = f.str()
		}
		return nil
	})
}

type PingRequest struct{}

func (m *PingRequest) appendWire(b []byte) []byte { return b }
func (m *PingRequest) readWire(b []byte) error    { return readFields(b, skipField) }

type PingResponse struct {
	Status string
}

func (m *PingResponse) appendWire(b []byte) []byte {
	return appendString(b, 1, m.Status)
}

func (m *PingResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.Status = f.str()
		}
		return nil
	})
}

// Record is a PHQ-9 record as exchanged with the backend.
type Record struct {
	Id        string
	Answers   []int32
	Total     int32
	Severity  string
	Locale    string
	CreatedAt time.Time
	SyncedAt  time.Time
}

func (m *Record) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendPackedInt32(b, 2, m.Answers)
	b = appendInt32(b, 3, m.Total)
	b = appendString(b, 4, m.Severity)
	b = appendString(b, 5, m.Locale)
	b = appendTime(b, 6, m.CreatedAt)
	return appendTime(b, 7, m.SyncedAt)
}

func (m *Record) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Id = f.str()
		case 2:
			m.Answers, err = readInt32s(m.Answers, f)
		case 3:
			m.Total = f.int32()
		case 4:
			m.Severity = f.str()
		case 5:
			m.Locale = f.str()
		case 6:
			m.CreatedAt, err = readTime(f)
		case 7:
			m.SyncedAt, err = readTime(f)
		}
		return err
	})
}

type InsertRecordRequest struct {
	Record *Record
}

func (m *InsertRecordRequest) appendWire(b []byte) []byte {
	if m.Record != nil {
		b = appendMessage(b, 1, m.Record)
	}
	return b
}

func (m *InsertRecordRequest) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Record = &Record{}
		return m.Record.readWire(f.bytes)
	})
}

// InsertRecordResponse reports Inserted=false when the account already holds
// a record with the same creation time.
type InsertRecordResponse struct {
	Inserted bool
}

func (m *InsertRecordResponse) appendWire(b []byte) []byte {
	return appendBool(b, 1, m.Inserted)
}

func (m *InsertRecordResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.Inserted = f.bool()
		}
		return nil
	})
}

type ListRecordsRequest struct{}

func (m *ListRecordsRequest) appendWire(b []byte) []byte { return b }
func (m *ListRecordsRequest) readWire(b []byte) error    { return readFields(b, skipField) }

type ListRecordsResponse struct {
	Records []*Record
}

func (m *ListRecordsResponse) appendWire(b []byte) []byte {
	for _, r := range m.Records {
		if r != nil {
			b = appendMessage(b, 1, r)
		}
	}
	return b
}

func (m *ListRecordsResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		r := &Record{}
		if err := r.readWire(f.bytes); err != nil {
			return err
		}
		m.Records = append(m.Records, r)
		return nil
	})
}

type DiaryEntry struct {
	Id        string
	EntryDate string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m *DiaryEntry) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.EntryDate)
	b = appendString(b, 3, m.Title)
	b = appendString(b, 4, m.Content)
	b = appendTime(b, 5, m.CreatedAt)
	return appendTime(b, 6, m.UpdatedAt)
}

func (m *DiaryEntry) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.Id = f.str()
		case 2:
			m.EntryDate = f.str()
		case 3:
			m.Title = f.str()
		case 4:
			m.Content = f.str()
		case 5:
			m.CreatedAt, err = readTime(f)
		case 6:
			m.UpdatedAt, err = readTime(f)
		}
		return err
	})
}

// entryMessage backs the three messages that carry a single DiaryEntry.
type entryMessage struct {
	Entry *DiaryEntry
}

func (m *entryMessage) appendWire(b []byte) []byte {
	if m.Entry != nil {
		b = appendMessage(b, 1, m.Entry)
	}
	return b
}

func (m *entryMessage) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		m.Entry = &DiaryEntry{}
		return m.Entry.readWire(f.bytes)
	})
}

type SaveDiaryEntryRequest struct {
	Entry *DiaryEntry
}

func (m *SaveDiaryEntryRequest) appendWire(b []byte) []byte {
	return (*entryMessage)(m).appendWire(b)
}
func (m *SaveDiaryEntryRequest) readWire(b []byte) error { return (*entryMessage)(m).readWire(b) }

type SaveDiaryEntryResponse struct {
	Entry *DiaryEntry
}

func (m *SaveDiaryEntryResponse) appendWire(b []byte) []byte {
	return (*entryMessage)(m).appendWire(b)
}
func (m *SaveDiaryEntryResponse) readWire(b []byte) error { return (*entryMessage)(m).readWire(b) }

type ListDiaryEntriesRequest struct{}

func (m *ListDiaryEntriesRequest) appendWire(b []byte) []byte { return b }
func (m *ListDiaryEntriesRequest) readWire(b []byte) error    { return readFields(b, skipField) }

type ListDiaryEntriesResponse struct {
	Entries []*DiaryEntry
}

func (m *ListDiaryEntriesResponse) appendWire(b []byte) []byte {
	for _, e := range m.Entries {
		if e != nil {
			b = appendMessage(b, 1, e)
		}
	}
	return b
}

func (m *ListDiaryEntriesResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		e := &DiaryEntry{}
		if err := e.readWire(f.bytes); err != nil {
			return err
		}
		m.Entries = append(m.Entries, e)
		return nil
	})
}

// dateMessage backs the requests keyed by entry date.
type dateMessage struct {
	EntryDate string
}

func (m *dateMessage) appendWire(b []byte) []byte {
	return appendString(b, 1, m.EntryDate)
}

func (m *dateMessage) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		if f.num == 1 {
			m.EntryDate = f.str()
		}
		return nil
	})
}

type GetDiaryEntryRequest struct {
	EntryDate string
}

func (m *GetDiaryEntryRequest) appendWire(b []byte) []byte { return (*dateMessage)(m).appendWire(b) }
func (m *GetDiaryEntryRequest) readWire(b []byte) error    { return (*dateMessage)(m).readWire(b) }

type GetDiaryEntryResponse struct {
	Entry *DiaryEntry
}

func (m *GetDiaryEntryResponse) appendWire(b []byte) []byte {
	return (*entryMessage)(m).appendWire(b)
}
func (m *GetDiaryEntryResponse) readWire(b []byte) error { return (*entryMessage)(m).readWire(b) }

type DeleteDiaryEntryRequest struct {
	EntryDate string
}

func (m *DeleteDiaryEntryRequest) appendWire(b []byte) []byte {
	return (*dateMessage)(m).appendWire(b)
}
func (m *DeleteDiaryEntryRequest) readWire(b []byte) error { return (*dateMessage)(m).readWire(b) }

type DeleteDiaryEntryResponse struct{}

func (m *DeleteDiaryEntryResponse) appendWire(b []byte) []byte { return b }
func (m *DeleteDiaryEntryResponse) readWire(b []byte) error    { return readFields(b, skipField) }

type GetExportUploadURLRequest struct{}

func (m *GetExportUploadURLRequest) appendWire(b []byte) []byte { return b }
func (m *GetExportUploadURLRequest) readWire(b []byte) error    { return readFields(b, skipField) }

type GetExportUploadURLResponse struct {
	Key string
	Url string
}

func (m *GetExportUploadURLResponse) appendWire(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	return appendString(b, 2, m.Url)
}

func (m *GetExportUploadURLResponse) readWire(b []byte) error {
	return readFields(b, func(f field) error {
		switch f.num {
		case 1:
			m.Key = f.str()
		case 2:
			m.Url = f.str()
		}
		return nil
	})
}

func skipField(field) error { return nil }
