package clients

import (
	"errors"
	"fmt"
	"time"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
)

func UsageFromProto(pb *catalogrpc.UsageResponse) catalog.Usage {
	if pb == nil {
		return catalog.Usage{}
	}
	return catalog.Usage{
		TotalSpace: pb.TotalSpace,
		UsedSpace:  pb.UsedSpace,
		FreeSpace:  pb.FreeSpace,
		MaxFiles:   int(pb.MaxFiles),
		Entries:    int(pb.Entries),
		Active:     int(pb.Active),
		Deleted:    int(pb.Deleted),
	}
}

func FilesFromProto(pb *catalogrpc.ListFilesResponse) []catalog.FileSummary {
	files := make([]catalog.FileSummary, 0, len(pb.Files))
	for _, f := range pb.Files {
		files = append(files, catalog.FileSummary{Name: f.Name, Size: f.Size})
	}
	return files
}

func EntryFromProto(pb *catalogrpc.EntryInfo) catalog.Entry {
	return catalog.Entry{
		ID:          pb.Id,
		Name:        pb.Name,
		Path:        pb.Path,
		Size:        pb.Size,
		CreatedAt:   time.Unix(0, pb.CreatedAt),
		ModifiedAt:  time.Unix(0, pb.ModifiedAt),
		IsDirectory: pb.IsDirectory,
		IsDeleted:   pb.IsDeleted,
	}
}

func ScanFromProto(pb *catalogrpc.ScanResponse) recovery.ScanResult {
	res := recovery.ScanResult{
		Active:       int(pb.Active),
		Deleted:      int(pb.Deleted),
		ActiveBytes:  pb.ActiveBytes,
		DeletedBytes: pb.DeletedBytes,
	}
	for _, e := range pb.DeletedEntries {
		res.DeletedEntries = append(res.DeletedEntries, EntryFromProto(e))
	}
	return res
}

// RecoverAllFromProto rebuilds the joined error from the failed paths; the
// per-entry causes stay on the server.
func RecoverAllFromProto(pb *catalogrpc.RecoverAllResponse) recovery.RecoverAllResult {
	res := recovery.RecoverAllResult{Recovered: int(pb.Recovered), Failed: pb.Failed}
	errs := make([]error, 0, len(pb.Failed))
	for _, path := range pb.Failed {
		errs = append(errs, fmt.Errorf("recover %s failed", path))
	}
	res.Err = errors.Join(errs...)
	return res
}

func AnalysisFromProto(pb *catalogrpc.AnalyzeResponse) recovery.Analysis {
	u := UsageFromProto(pb.Usage)
	return recovery.Analysis{
		TotalSpace:       u.TotalSpace,
		UsedSpace:        u.UsedSpace,
		FreeSpace:        u.FreeSpace,
		UsagePercent:     pb.UsagePercent,
		MaxFiles:         u.MaxFiles,
		Slots:            u.Entries,
		Active:           u.Active,
		Deleted:          u.Deleted,
		ReclaimableBytes: pb.ReclaimableBytes,
		Fragmentation:    pb.Fragmentation,
		LargestName:      pb.LargestName,
		LargestSize:      pb.LargestSize,
	}
}
