package config

type WorkerKeyStruct struct {
	AuditQueue string
}

var WorkerKey = &WorkerKeyStruct{
	AuditQueue: "audit_log_queue",
}
