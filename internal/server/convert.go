package server

import (
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
)

func UsageToProto(u catalog.Usage) *catalogrpc.UsageResponse {
	return &catalogrpc.UsageResponse{
		TotalSpace: u.TotalSpace,
		UsedSpace:  u.UsedSpace,
		FreeSpace:  u.FreeSpace,
		MaxFiles:   int64(u.MaxFiles),
		Entries:    int64(u.Entries),
		Active:     int64(u.Active),
		Deleted:    int64(u.Deleted),
	}
}

func FilesToProto(files []catalog.FileSummary) *catalogrpc.ListFilesResponse {
	resp := &catalogrpc.ListFilesResponse{Files: make([]*catalogrpc.FileSummary, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, &catalogrpc.FileSummary{Name: f.Name, Size: f.Size})
	}
	return resp
}

func EntryToProto(e catalog.Entry) *catalogrpc.EntryInfo {
	return &catalogrpc.EntryInfo{
		Id:          e.ID,
		Name:        e.Name,
		Path:        e.Path,
		Size:        e.Size,
		CreatedAt:   e.CreatedAt.UnixNano(),
		ModifiedAt:  e.ModifiedAt.UnixNano(),
		IsDirectory: e.IsDirectory,
		IsDeleted:   e.IsDeleted,
	}
}

func ScanToProto(res recovery.ScanResult) *catalogrpc.ScanResponse {
	resp := &catalogrpc.ScanResponse{
		Active:       int64(res.Active),
		Deleted:      int64(res.Deleted),
		ActiveBytes:  res.ActiveBytes,
		DeletedBytes: res.DeletedBytes,
	}
	for _, e := range res.DeletedEntries {
		resp.DeletedEntries = append(resp.DeletedEntries, EntryToProto(e))
	}
	return resp
}

func RecoverAllToProto(res recovery.RecoverAllResult) *catalogrpc.RecoverAllResponse {
	return &catalogrpc.RecoverAllResponse{
		Recovered: int64(res.Recovered),
		Failed:    res.Failed,
	}
}

func AnalysisToProto(a recovery.Analysis) *catalogrpc.AnalyzeResponse {
	return &catalogrpc.AnalyzeResponse{
		Usage: &catalogrpc.UsageResponse{
			TotalSpace: a.TotalSpace,
			UsedSpace:  a.UsedSpace,
			FreeSpace:  a.FreeSpace,
			MaxFiles:   int64(a.MaxFiles),
			Entries:    int64(a.Slots),
			Active:     int64(a.Active),
			Deleted:    int64(a.Deleted),
		},
		UsagePercent:     a.UsagePercent,
		ReclaimableBytes: a.ReclaimableBytes,
		Fragmentation:    a.Fragmentation,
		LargestName:      a.LargestName,
		LargestSize:      a.LargestSize,
	}
}
