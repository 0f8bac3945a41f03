package catalogrpc

import "google.golang.org/protobuf/encoding/protowire"

type Empty struct{}

func (m *Empty) AppendWire(b []byte) []byte { return b }

func (m *Empty) UnmarshalWire(b []byte) error {
	return decodeFields(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

type CreateFileRequest struct {
	Name string
	Path string
	Size uint64
}

func (m *CreateFileRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Path)
	return appendUint(b, 3, m.Size)
}

func (m *CreateFileRequest) UnmarshalWire(b []byte) error {
	*m = CreateFileRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Name)
		case 2:
			return consumeString(typ, b, &m.Path)
		case 3:
			return consumeUint(typ, b, &m.Size)
		}
		return 0
	})
}

// PathRequest addresses a single entry by path, used by DeleteFile and RecoverFile.
type PathRequest struct {
	Path string
}

func (m *PathRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.Path)
}

func (m *PathRequest) UnmarshalWire(b []byte) error {
	*m = PathRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return consumeString(typ, b, &m.Path)
		}
		return 0
	})
}

type UsageResponse struct {
	TotalSpace uint64
	UsedSpace  uint64
	FreeSpace  uint64
	MaxFiles   int64
	Entries    int64
	Active     int64
	Deleted    int64
}

func (m *UsageResponse) AppendWire(b []byte) []byte {
	b = appendUint(b, 1, m.TotalSpace)
	b = appendUint(b, 2, m.UsedSpace)
	b = appendUint(b, 3, m.FreeSpace)
	b = appendInt(b, 4, m.MaxFiles)
	b = appendInt(b, 5, m.Entries)
	b = appendInt(b, 6, m.Active)
	return appendInt(b, 7, m.Deleted)
}

func (m *UsageResponse) UnmarshalWire(b []byte) error {
	*m = UsageResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint(typ, b, &m.TotalSpace)
		case 2:
			return consumeUint(typ, b, &m.UsedSpace)
		case 3:
			return consumeUint(typ, b, &m.FreeSpace)
		case 4:
			return consumeInt(typ, b, &m.MaxFiles)
		case 5:
			return consumeInt(typ, b, &m.Entries)
		case 6:
			return consumeInt(typ, b, &m.Active)
		case 7:
			return consumeInt(typ, b, &m.Deleted)
		}
		return 0
	})
}

type ListFilesRequest struct {
	Filter string
	Prefix bool // match paths starting with Filter instead of the legacy exclusion rule
}

func (m *ListFilesRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Filter)
	return appendBool(b, 2, m.Prefix)
}

func (m *ListFilesRequest) UnmarshalWire(b []byte) error {
	*m = ListFilesRequest{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Filter)
		case 2:
			return consumeBool(typ, b, &m.Prefix)
		}
		return 0
	})
}

type FileSummary struct {
	Name string
	Size uint64
}

func (m *FileSummary) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	return appendUint(b, 2, m.Size)
}

func (m *FileSummary) UnmarshalWire(b []byte) error {
	*m = FileSummary{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Name)
		case 2:
			return consumeUint(typ, b, &m.Size)
		}
		return 0
	})
}

type ListFilesResponse struct {
	Files []*FileSummary
}

func (m *ListFilesResponse) AppendWire(b []byte) []byte {
	for _, f := range m.Files {
		b = appendMessage(b, 1, f)
	}
	return b
}

func (m *ListFilesResponse) UnmarshalWire(b []byte) error {
	*m = ListFilesResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num != 1 {
			return 0
		}
		f := new(FileSummary)
		n := consumeMessage(typ, b, f)
		if n > 0 {
			m.Files = append(m.Files, f)
		}
		return n
	})
}

type OptimizeResponse struct {
	Removed int64
	Usage   *UsageResponse
}

func (m *OptimizeResponse) AppendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Removed)
	if m.Usage != nil {
		b = appendMessage(b, 2, m.Usage)
	}
	return b
}

func (m *OptimizeResponse) UnmarshalWire(b []byte) error {
	*m = OptimizeResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt(typ, b, &m.Removed)
		case 2:
			m.Usage = new(UsageResponse)
			return consumeMessage(typ, b, m.Usage)
		}
		return 0
	})
}

// EntryInfo is a full catalog entry. Timestamps are Unix nanoseconds.
type EntryInfo struct {
	Id          string
	Name        string
	Path        string
	Size        uint64
	CreatedAt   int64
	ModifiedAt  int64
	IsDirectory bool
	IsDeleted   bool
}

func (m *EntryInfo) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Path)
	b = appendUint(b, 4, m.Size)
	b = appendInt(b, 5, m.CreatedAt)
	b = appendInt(b, 6, m.ModifiedAt)
	b = appendBool(b, 7, m.IsDirectory)
	return appendBool(b, 8, m.IsDeleted)
}

func (m *EntryInfo) UnmarshalWire(b []byte) error {
	*m = EntryInfo{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Name)
		case 3:
			return consumeString(typ, b, &m.Path)
		case 4:
			return consumeUint(typ, b, &m.Size)
		case 5:
			return consumeInt(typ, b, &m.CreatedAt)
		case 6:
			return consumeInt(typ, b, &m.ModifiedAt)
		case 7:
			return consumeBool(typ, b, &m.IsDirectory)
		case 8:
			return consumeBool(typ, b, &m.IsDeleted)
		}
		return 0
	})
}

type ScanResponse struct {
	Active         int64
	Deleted        int64
	ActiveBytes    uint64
	DeletedBytes   uint64
	DeletedEntries []*EntryInfo
}

func (m *ScanResponse) AppendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Active)
	b = appendInt(b, 2, m.Deleted)
	b = appendUint(b, 3, m.ActiveBytes)
	b = appendUint(b, 4, m.DeletedBytes)
	for _, e := range m.DeletedEntries {
		b = appendMessage(b, 5, e)
	}
	return b
}

func (m *ScanResponse) UnmarshalWire(b []byte) error {
	*m = ScanResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt(typ, b, &m.Active)
		case 2:
			return consumeInt(typ, b, &m.Deleted)
		case 3:
			return consumeUint(typ, b, &m.ActiveBytes)
		case 4:
			return consumeUint(typ, b, &m.DeletedBytes)
		case 5:
			e := new(EntryInfo)
			n := consumeMessage(typ, b, e)
			if n > 0 {
				m.DeletedEntries = append(m.DeletedEntries, e)
			}
			return n
		}
		return 0
	})
}

type RecoverAllResponse struct {
	Recovered int64
	Failed    []string
}

func (m *RecoverAllResponse) AppendWire(b []byte) []byte {
	b = appendInt(b, 1, m.Recovered)
	for _, path := range m.Failed {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, path)
	}
	return b
}

func (m *RecoverAllResponse) UnmarshalWire(b []byte) error {
	*m = RecoverAllResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt(typ, b, &m.Recovered)
		case 2:
			var path string
			n := consumeString(typ, b, &path)
			if n > 0 {
				m.Failed = append(m.Failed, path)
			}
			return n
		}
		return 0
	})
}

type AnalyzeResponse struct {
	Usage            *UsageResponse
	UsagePercent     float64
	ReclaimableBytes uint64
	Fragmentation    float64
	LargestName      string
	LargestSize      uint64
}

func (m *AnalyzeResponse) AppendWire(b []byte) []byte {
	if m.Usage != nil {
		b = appendMessage(b, 1, m.Usage)
	}
	b = appendDouble(b, 2, m.UsagePercent)
	b = appendUint(b, 3, m.ReclaimableBytes)
	b = appendDouble(b, 4, m.Fragmentation)
	b = appendString(b, 5, m.LargestName)
	return appendUint(b, 6, m.LargestSize)
}

func (m *AnalyzeResponse) UnmarshalWire(b []byte) error {
	*m = AnalyzeResponse{}
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			m.Usage = new(UsageResponse)
			return consumeMessage(typ, b, m.Usage)
		case 2:
			return consumeDouble(typ, b, &m.UsagePercent)
		case 3:
			return consumeUint(typ, b, &m.ReclaimableBytes)
		case 4:
			return consumeDouble(typ, b, &m.Fragmentation)
		case 5:
			return consumeString(typ, b, &m.LargestName)
		case 6:
			return consumeUint(typ, b, &m.LargestSize)
		}
		return 0
	})
}
