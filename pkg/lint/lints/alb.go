// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lints

import (
	"strings"

	corev1 "k8s.io/api/core/v1"
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"
	"korrecte.dev/korrecte/pkg/core"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

// ALB ingress controller annotations.
const (
	ingressClassAnnotation      = "kubernetes.io/ingress.class"
	albTargetTypeAnnotation     = "alb.ingress.kubernetes.io/target-type"
	albSecurityGroupsAnnotation = "alb.ingress.kubernetes.io/security-groups"

	albIngressClass = "alb"
)

func isALB(meta *metav1.ObjectMeta) bool {
	return core.GetAnnotation(meta, ingressClassAnnotation) == albIngressClass
}

// ingressServiceNames returns the backend services referenced by the HTTP
// paths of an ingress.
func ingressServiceNames(ing *networkingv1beta1.Ingress) sets.Set[string] {
	names := sets.New[string]()
	for _, rule := range ing.Spec.Rules {
		if rule.HTTP == nil {
			continue
		}
		for _, path := range rule.HTTP.Paths {
			names.Insert(path.Backend.ServiceName)
		}
	}
	return names
}

func extensionsIngressServiceNames(ing *extensionsv1beta1.Ingress) sets.Set[string] {
	names := sets.New[string]()
	for _, rule := range ing.Spec.Rules {
		if rule.HTTP == nil {
			continue
		}
		for _, path := range rule.HTTP.Paths {
			names.Insert(path.Backend.ServiceName)
		}
	}
	return names
}

var albIngressInstanceSpec = reporting.Spec{Group: reporting.Configuration, Name: "alb_ingress_controller_instance_misconfiguration"}

// albIngressInstance reports services routed to by an ALB ingress whose type
// the ALB target type cannot reach. Instance targets need a node port, ip
// targets need a ClusterIP service.
type albIngressInstance struct {
	lint.Base
}

var _ lint.Lint = &albIngressInstance{}

func (l *albIngressInstance) Spec() reporting.Spec {
	return albIngressInstanceSpec
}

func (l *albIngressInstance) CheckIngress(ing *networkingv1beta1.Ingress, ctx *lint.Context) {
	if isALB(&ing.ObjectMeta) {
		l.check(&ing.ObjectMeta, ingressServiceNames(ing), ctx)
	}
}

func (l *albIngressInstance) CheckExtensionsIngress(ing *extensionsv1beta1.Ingress, ctx *lint.Context) {
	if isALB(&ing.ObjectMeta) {
		l.check(&ing.ObjectMeta, extensionsIngressServiceNames(ing), ctx)
	}
}

func (l *albIngressInstance) check(meta *metav1.ObjectMeta, serviceNames sets.Set[string], ctx *lint.Context) {
	allowed := allowedServiceTypes(core.GetAnnotation(meta, albTargetTypeAnnotation))
	for _, obj := range ctx.Objects() {
		svc, ok := obj.(*corev1.Service)
		if !ok || !serviceNames.Has(svc.Name) {
			continue
		}
		serviceType := string(svc.Spec.Type)
		if serviceType == "" {
			serviceType = string(corev1.ServiceTypeClusterIP)
		}
		if !allowed.Has(strings.ToLower(serviceType)) {
			ctx.Report(reporting.NewFinding(albIngressInstanceSpec, meta).
				With("service", svc.Name))
		}
	}
}

// allowedServiceTypes returns the lowercase service types reachable with an
// ALB target type. Instance is the default.
func allowedServiceTypes(targetType string) sets.Set[string] {
	switch targetType {
	case "", "instance":
		return sets.New(
			strings.ToLower(string(corev1.ServiceTypeNodePort)),
			strings.ToLower(string(corev1.ServiceTypeLoadBalancer)))
	case "ip":
		return sets.New(strings.ToLower(string(corev1.ServiceTypeClusterIP)))
	default:
		return sets.New[string]()
	}
}

var albNamedSecurityGroupsSpec = reporting.Spec{Group: reporting.Configuration, Name: "alb_named_sg"}

// albNamedSecurityGroups reports ALB ingresses that list security groups by
// id. Ids differ between accounts and regions, names do not.
type albNamedSecurityGroups struct {
	lint.Base
}

var _ lint.Lint = &albNamedSecurityGroups{}

func (l *albNamedSecurityGroups) Spec() reporting.Spec {
	return albNamedSecurityGroupsSpec
}

func (l *albNamedSecurityGroups) CheckIngress(ing *networkingv1beta1.Ingress, ctx *lint.Context) {
	l.check(&ing.ObjectMeta, ctx)
}

func (l *albNamedSecurityGroups) CheckExtensionsIngress(ing *extensionsv1beta1.Ingress, ctx *lint.Context) {
	l.check(&ing.ObjectMeta, ctx)
}

func (l *albNamedSecurityGroups) check(meta *metav1.ObjectMeta, ctx *lint.Context) {
	groups, found := core.LookupAnnotation(meta, albSecurityGroupsAnnotation)
	if !found {
		return
	}
	var ids []string
	for _, group := range strings.Split(groups, ",") {
		group = strings.TrimSpace(group)
		if strings.HasPrefix(group, "sg-") {
			ids = append(ids, group)
		}
	}
	if len(ids) == 0 {
		return
	}
	ctx.Report(reporting.NewFinding(albNamedSecurityGroupsSpec, meta).
		With("invalid_security_groups", strings.Join(ids, ",")))
}
