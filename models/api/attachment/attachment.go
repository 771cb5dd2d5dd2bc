package attachmentapimodels

import (
	dbmodels "fnb-tracking-backend/models/db"
)

type AttachmentView struct {
	ID         string `json:"id"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	UploadedBy string `json:"uploaded_by,omitempty"` // uploader F-number
}

func AttachmentConvert(rec dbmodels.Attachment) AttachmentView {
	view := AttachmentView{
		ID:       rec.ID,
		FileName: rec.FileName,
		FileSize: rec.FileSize,
	}
	if rec.UploadedBy != nil {
		view.UploadedBy = rec.UploadedBy.FNumber
	}
	return view
}

func AttachmentListConvert(list []dbmodels.Attachment) []AttachmentView {
	result := make([]AttachmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, AttachmentConvert(rec))
	}
	return result
}
