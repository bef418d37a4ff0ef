package mail

import "html/template"

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 2rem; text-align: center;">
    <h1 style="margin: 0;">Smart City</h1>
    <p style="margin: 0.5rem 0 0 0;">Complaint Management System</p>
  </div>
  <div style="padding: 2rem; background: #f8fafc;">
    <h2 style="color: #1e293b;">Your {{.Kind}}</h2>
    <p style="color: #64748b;">You have requested a one-time code for your Smart City account.</p>
    <div style="background: white; border: 2px dashed #667eea; border-radius: 12px; padding: 2rem; text-align: center;">
      <div style="background: #667eea; color: white; font-size: 2rem; font-weight: bold; padding: 1rem; border-radius: 8px; letter-spacing: 0.5rem; font-family: monospace;">{{.OTP}}</div>
    </div>
    <p style="color: #64748b; font-size: 0.9rem;">
      This code is valid for 10 minutes only. Do not share it with anyone.
      If you didn't request it, please ignore this email.
    </p>
  </div>
</div>
`))

var notedTemplate = template.Must(template.New("noted").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 2rem; text-align: center;">
    <h1 style="margin: 0;">Smart City</h1>
    <p style="margin: 0.5rem 0 0 0;">Complaint Management System</p>
  </div>
  <div style="padding: 2rem; background: #f8fafc;">
    <h2 style="color: #1e293b;">Complaint Status Update</h2>
    <p style="color: #64748b;">Your complaint has been noted and will be resolved shortly. Thank you for helping improve our city.</p>
    <div style="background: white; border-radius: 12px; padding: 1.5rem; border-left: 4px solid #10b981;">
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Category:</strong> {{.Category}}</p>
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Urgency:</strong> {{.Urgency}}</p>
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Location:</strong> {{.Location}}</p>
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Status:</strong> <span style="color: #3b82f6; font-weight: bold;">Noted</span></p>
    </div>
  </div>
</div>
`))

var contactTemplate = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #667eea; color: white; padding: 2rem; text-align: center;">
    <h1 style="margin: 0;">Smart City</h1>
    <p style="margin: 0.5rem 0 0 0;">Contact Form Submission</p>
  </div>
  <div style="padding: 2rem; background: #f8fafc;">
    <div style="background: white; border-radius: 12px; padding: 1.5rem; margin-bottom: 1.5rem;">
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>From:</strong> {{.Name}} ({{.Email}})</p>
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Subject:</strong> {{.Subject}}</p>
      <p style="color: #64748b; margin: 0.5rem 0;"><strong>Date:</strong> {{.Date}}</p>
    </div>
    <div style="background: white; border-radius: 12px; padding: 1.5rem;">
      <p style="color: #64748b; line-height: 1.6; margin: 0;">{{.Message}}</p>
    </div>
  </div>
</div>
`))
