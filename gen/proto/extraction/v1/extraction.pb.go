// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobType       string                 `protobuf:"bytes,3,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Attempts      int32                  `protobuf:"varint,5,opt,name=attempts,proto3" json:"attempts,omitempty"`
	MaxAttempts   int32                  `protobuf:"varint,6,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	LockedBy      string                 `protobuf:"bytes,7,opt,name=locked_by,json=lockedBy,proto3" json:"locked_by,omitempty"`
	LockedAt      string                 `protobuf:"bytes,8,opt,name=locked_at,json=lockedAt,proto3" json:"locked_at,omitempty"`
	LastError     string                 `protobuf:"bytes,9,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Job) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *Job) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *Job) GetLockedBy() string {
	if x != nil {
		return x.LockedBy
	}
	return ""
}

func (x *Job) GetLockedAt() string {
	if x != nil {
		return x.LockedAt
	}
	return ""
}

func (x *Job) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EnqueueExtractionRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// "extraction" (default) or "ocr"
	JobType       string `protobuf:"bytes,2,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionRequest) Reset() {
	*x = EnqueueExtractionRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionRequest) ProtoMessage() {}

func (x *EnqueueExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionRequest.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *EnqueueExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *EnqueueExtractionRequest) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

type EnqueueExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionResponse) Reset() {
	*x = EnqueueExtractionResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionResponse) ProtoMessage() {}

func (x *EnqueueExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionResponse.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{2}
}

func (x *EnqueueExtractionResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	PageCount     int32                  `protobuf:"varint,3,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	VersionKeys   []string               `protobuf:"bytes,5,rep,name=version_keys,json=versionKeys,proto3" json:"version_keys,omitempty"`
	DerivedKeys   []string               `protobuf:"bytes,6,rep,name=derived_keys,json=derivedKeys,proto3" json:"derived_keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetDocumentResponse) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *GetDocumentResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetDocumentResponse) GetVersionKeys() []string {
	if x != nil {
		return x.VersionKeys
	}
	return nil
}

func (x *GetDocumentResponse) GetDerivedKeys() []string {
	if x != nil {
		return x.DerivedKeys
	}
	return nil
}

type ListJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// empty = all statuses; otherwise any of pending/processing/completed/failed
	Statuses      []string `protobuf:"bytes,1,rep,name=statuses,proto3" json:"statuses,omitempty"`
	DocumentId    string   `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Limit         int32    `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetStatuses() []string {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ListJobsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ReclaimOrphansRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// processing rows locked longer ago than this are force-reset to pending
	OlderThanSeconds int64 `protobuf:"varint,1,opt,name=older_than_seconds,json=olderThanSeconds,proto3" json:"older_than_seconds,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ReclaimOrphansRequest) Reset() {
	*x = ReclaimOrphansRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReclaimOrphansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReclaimOrphansRequest) ProtoMessage() {}

func (x *ReclaimOrphansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReclaimOrphansRequest.ProtoReflect.Descriptor instead.
func (*ReclaimOrphansRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{7}
}

func (x *ReclaimOrphansRequest) GetOlderThanSeconds() int64 {
	if x != nil {
		return x.OlderThanSeconds
	}
	return 0
}

type ReclaimOrphansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reclaimed     int64                  `protobuf:"varint,1,opt,name=reclaimed,proto3" json:"reclaimed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReclaimOrphansResponse) Reset() {
	*x = ReclaimOrphansResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReclaimOrphansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReclaimOrphansResponse) ProtoMessage() {}

func (x *ReclaimOrphansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReclaimOrphansResponse.ProtoReflect.Descriptor instead.
func (*ReclaimOrphansResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{8}
}

func (x *ReclaimOrphansResponse) GetReclaimed() int64 {
	if x != nil {
		return x.Reclaimed
	}
	return 0
}

var File_extraction_v1_extraction_proto protoreflect.FileDescriptor

const file_extraction_v1_extraction_proto_rawDesc = "" +
	"\n" +
	"\x1eextraction/v1/extraction.proto\x12\rextraction.v1\"\xbf\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bjob_type\x18\x03 \x01(\tR\ajobType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\battempts\x18\x05 \x01(\x05R\battempts\x12!\n" +
	"\fmax_attempts\x18\x06 \x01(\x05R\vmaxAttempts\x12\x1b\n" +
	"\tlocked_by\x18\a \x01(\tR\blockedBy\x12\x1b\n" +
	"\tlocked_at\x18\b \x01(\tR\blockedAt\x12\x1d\n" +
	"\n" +
	"last_error\x18\t \x01(\tR\tlastError\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"V\n" +
	"\x18EnqueueExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bjob_type\x18\x02 \x01(\tR\ajobType\"A\n" +
	"\x19EnqueueExtractionResponse\x12$\n" +
	"\x03job\x18\x01 \x01(\v2\x12.extraction.v1.JobR\x03job\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\xd8\x01\n" +
	"\x13GetDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"page_count\x18\x03 \x01(\x05R\tpageCount\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x12!\n" +
	"\fversion_keys\x18\x05 \x03(\tR\vversionKeys\x12!\n" +
	"\fderived_keys\x18\x06 \x03(\tR\vderivedKeys\"d\n" +
	"\x0fListJobsRequest\x12\x1a\n" +
	"\bstatuses\x18\x01 \x03(\tR\bstatuses\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\":\n" +
	"\x10ListJobsResponse\x12&\n" +
	"\x04jobs\x18\x01 \x03(\v2\x12.extraction.v1.JobR\x04jobs\"E\n" +
	"\x15ReclaimOrphansRequest\x12,\n" +
	"\x12older_than_seconds\x18\x01 \x01(\x03R\x10olderThanSeconds\"6\n" +
	"\x16ReclaimOrphansResponse\x12\x1c\n" +
	"\treclaimed\x18\x01 \x01(\x03R\treclaimed2\x82\x03\n" +
	"\x16ExtractionAdminService\x12f\n" +
	"\x11EnqueueExtraction\x12'.extraction.v1.EnqueueExtractionRequest\x1a(.extraction.v1.EnqueueExtractionResponse\x12T\n" +
	"\vGetDocument\x12!.extraction.v1.GetDocumentRequest\x1a\".extraction.v1.GetDocumentResponse\x12K\n" +
	"\bListJobs\x12\x1e.extraction.v1.ListJobsRequest\x1a\x1f.extraction.v1.ListJobsResponse\x12]\n" +
	"\x0eReclaimOrphans\x12$.extraction.v1.ReclaimOrphansRequest\x1a%.extraction.v1.ReclaimOrphansResponseBGZEgithub.com/readlee/doc-extractor/gen/proto/extraction/v1;extractionv1b\x06proto3"

var (
	file_extraction_v1_extraction_proto_rawDescOnce sync.Once
	file_extraction_v1_extraction_proto_rawDescData []byte
)

func file_extraction_v1_extraction_proto_rawDescGZIP() []byte {
	file_extraction_v1_extraction_proto_rawDescOnce.Do(func() {
		file_extraction_v1_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)))
	})
	return file_extraction_v1_extraction_proto_rawDescData
}

var file_extraction_v1_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_extraction_v1_extraction_proto_goTypes = []any{
	(*Job)(nil),                       // 0: extraction.v1.Job
	(*EnqueueExtractionRequest)(nil),  // 1: extraction.v1.EnqueueExtractionRequest
	(*EnqueueExtractionResponse)(nil), // 2: extraction.v1.EnqueueExtractionResponse
	(*GetDocumentRequest)(nil),        // 3: extraction.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),       // 4: extraction.v1.GetDocumentResponse
	(*ListJobsRequest)(nil),           // 5: extraction.v1.ListJobsRequest
	(*ListJobsResponse)(nil),          // 6: extraction.v1.ListJobsResponse
	(*ReclaimOrphansRequest)(nil),     // 7: extraction.v1.ReclaimOrphansRequest
	(*ReclaimOrphansResponse)(nil),    // 8: extraction.v1.ReclaimOrphansResponse
}
var file_extraction_v1_extraction_proto_depIdxs = []int32{
	0, // 0: extraction.v1.EnqueueExtractionResponse.job:type_name -> extraction.v1.Job
	0, // 1: extraction.v1.ListJobsResponse.jobs:type_name -> extraction.v1.Job
	1, // 2: extraction.v1.ExtractionAdminService.EnqueueExtraction:input_type -> extraction.v1.EnqueueExtractionRequest
	3, // 3: extraction.v1.ExtractionAdminService.GetDocument:input_type -> extraction.v1.GetDocumentRequest
	5, // 4: extraction.v1.ExtractionAdminService.ListJobs:input_type -> extraction.v1.ListJobsRequest
	7, // 5: extraction.v1.ExtractionAdminService.ReclaimOrphans:input_type -> extraction.v1.ReclaimOrphansRequest
	2, // 6: extraction.v1.ExtractionAdminService.EnqueueExtraction:output_type -> extraction.v1.EnqueueExtractionResponse
	4, // 7: extraction.v1.ExtractionAdminService.GetDocument:output_type -> extraction.v1.GetDocumentResponse
	6, // 8: extraction.v1.ExtractionAdminService.ListJobs:output_type -> extraction.v1.ListJobsResponse
	8, // 9: extraction.v1.ExtractionAdminService.ReclaimOrphans:output_type -> extraction.v1.ReclaimOrphansResponse
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_extraction_v1_extraction_proto_init() }
func file_extraction_v1_extraction_proto_init() {
	if File_extraction_v1_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_extraction_v1_extraction_proto_goTypes,
		DependencyIndexes: file_extraction_v1_extraction_proto_depIdxs,
		MessageInfos:      file_extraction_v1_extraction_proto_msgTypes,
	}.Build()
	File_extraction_v1_extraction_proto = out.File
	file_extraction_v1_extraction_proto_goTypes = nil
	file_extraction_v1_extraction_proto_depIdxs = nil
}
